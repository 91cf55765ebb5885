package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

// ErrUnknownFormat is returned for an output format other than text, json, or
// table.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriteOptions controls how sections are rendered.
type WriteOptions struct {
	Format string
	Labels bool // text only: print each section's name above its values
	Color  bool // text only: color the labels
}

var labelColor = color.New(color.FgHiCyan, color.Bold) // nolint:gochecknoglobals

// Write renders sections to w. Text output is one value per line with a blank
// line after each section; JSON output is one object per section per line.
func Write(w io.Writer, sections []Section, opts WriteOptions) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, sections, opts)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		for _, section := range sections {
			if err := encoder.Encode(section); err != nil {
				return fmt.Errorf("failed to encode section %s: %w", section.Name, err)
			}
		}
		return nil
	case FormatTable:
		return writeTable(w, sections)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
}

func writeText(w io.Writer, sections []Section, opts WriteOptions) error {
	for _, section := range sections {
		if opts.Labels {
			label := section.Name + ":"
			if opts.Color {
				label = labelColor.Sprint(label)
			}
			if _, err := fmt.Fprintln(w, label); err != nil {
				return fmt.Errorf("failed to write label: %w", err)
			}
		}
		for _, v := range section.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return fmt.Errorf("failed to write value: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("failed to write separator: %w", err)
		}
	}
	return nil
}
