package views

import "fmt"

// Window keeps a cursor inside a list and the slice of rows that fits on screen
type Window struct {
	size   int
	offset int
	cursor int
	total  int
}

// NewWindow creates a window showing at most size rows
func NewWindow(size int) *Window {
	if size <= 0 {
		size = 10
	}
	return &Window{size: size}
}

// SetSize changes the number of visible rows
func (w *Window) SetSize(size int) {
	if size > 0 {
		w.size = size
	}
	w.follow()
}

// SetTotal sets the list length and clamps the cursor
func (w *Window) SetTotal(total int) {
	w.total = total
	w.SetCursor(w.cursor)
}

// Cursor returns the selected row
func (w *Window) Cursor() int {
	return w.cursor
}

// SetCursor moves the cursor to pos, clamped to the list
func (w *Window) SetCursor(pos int) {
	w.cursor = min(max(pos, 0), max(w.total-1, 0))
	w.follow()
}

// Up moves the cursor one row up
func (w *Window) Up() bool {
	if w.cursor == 0 {
		return false
	}
	w.cursor--
	w.follow()
	return true
}

// Down moves the cursor one row down
func (w *Window) Down() bool {
	if w.cursor >= w.total-1 {
		return false
	}
	w.cursor++
	w.follow()
	return true
}

// Visible returns the half-open range of rows to draw
func (w *Window) Visible() (start, end int) {
	return w.offset, min(w.offset+w.size, w.total)
}

// Position describes where the window is, empty when everything fits
func (w *Window) Position() string {
	if w.total <= w.size {
		return ""
	}
	start, end := w.Visible()
	return fmt.Sprintf("%d-%d of %d", start+1, end, w.total)
}

func (w *Window) follow() {
	if w.cursor < w.offset {
		w.offset = w.cursor
	}
	if w.cursor >= w.offset+w.size {
		w.offset = w.cursor - w.size + 1
	}
	if maxOffset := max(w.total-w.size, 0); w.offset > maxOffset {
		w.offset = maxOffset
	}
}
