package views

import (
	"errors"

	"funknotes/internal/application"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err. A declined confirmation is shown as a plain message.
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), !errors.Is(err, application.ErrCancelled))
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// listHeight is the number of rows a list may use for the current height
func (s *ViewState) listHeight(reserved int) int {
	if s.Height <= 0 {
		return 15
	}
	return max(s.Height-reserved, 3)
}

// Messages for view switching

// SwitchToBrowserMsg returns to the browser and reloads it
type SwitchToBrowserMsg struct {
	// Message is shown in the browser after the switch
	Message string
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToSearchMsg opens the search view
type SwitchToSearchMsg struct{}

// SwitchToAddMsg opens the add item form for an object
type SwitchToAddMsg struct {
	Object string
}

// SwitchToConfirmMsg asks for confirmation before running Action
type SwitchToConfirmMsg struct {
	Title  string
	Target string
	Action func() (string, error)
}

// ComposeMsg asks the app to compose a new item for Object in the editor
type ComposeMsg struct {
	Object string
}

// ErrMsg carries a failure back to the view that started it
type ErrMsg struct {
	Err error
}
