// Package report renders dashboard views as Markdown, terminal text or JSON.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/dashfolio-dev/dashfolio/internal/dashboard"
)

// Format is an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat parses a format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render writes v to w in the given format.
func Render(w io.Writer, v dashboard.View, format Format) error {
	switch format {
	case FormatJSON:
		return JSON(w, v)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(v))
		return err
	case FormatText, "":
		return Text(w, v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Text renders the Markdown document for a terminal without colors.
func Text(w io.Writer, v dashboard.View) error {
	out, err := glamour.Render(Markdown(v), "notty")
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
