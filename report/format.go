package report

import (
	"fmt"
	"strings"
)

// Format selects a report renderer.
type Format uint8

const (
	FormatText  Format = 0x1 // FormatText renders the classic prose report.
	FormatTerse Format = 0x2 // FormatTerse renders CSV rows.
	FormatJSON  Format = 0x3 // FormatJSON renders an indented JSON document.
	FormatYAML  Format = 0x4 // FormatYAML renders a YAML document.
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatTerse:
		return "terse"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a report format name, case-insensitively.
// "csv" is accepted as an alias of terse and "yml" of yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "terse", "csv":
		return FormatTerse, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("invalid report format: %q", s)
	}
}
