// Package codec holds the file formats a project can be stored in.
package codec

import (
	"fmt"
	"strings"

	"funknotes/internal/adapters/sqlite"
	"funknotes/internal/ports"
)

// Storage format names accepted in settings
const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatSQLite = sqlite.FormatName
)

// Formats lists the supported storage formats, canonical first
func Formats() []string {
	return []string{FormatJSON, FormatText, FormatSQLite}
}

// New returns the codec for a storage format name
func New(format string) (ports.ProjectCodec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return JSON{}, nil
	case FormatText, "txt":
		return Text{}, nil
	case FormatSQLite:
		return sqlite.NewCodec(), nil
	default:
		return nil, fmt.Errorf("unknown storage format %q (expected one of %s)", format, strings.Join(Formats(), ", "))
	}
}
