package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	// ReportFormat is the line oriented "key = value" rendering of a tree.
	// It is output only.
	ReportFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"r":      ReportFormat,
		"report": ReportFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case ReportFormat:
		return []byte("report"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }
func (f Format) IsReport() bool { return f == ReportFormat }

// IsInput reports whether documents in f can be parsed.
func (f Format) IsInput() bool { return f == YAMLFormat || f == JSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	case ReportFormat:
		return ".txt"
	default:
		return ""
	}
}

// FromSuffix returns the input format for a file name extension, if any.
func FromSuffix(ext string) (Format, bool) {
	switch ext {
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".json":
		return JSONFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat, ReportFormat}
}
