package main

import (
	"encoding/json"
	"io"
	"strings"

	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// renderer writes command results in the format picked by --output
type renderer struct {
	out    io.Writer
	format *string
}

func (r renderer) write(v any) error {
	switch strings.ToLower(*r.format) {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "encode yaml")
		}
		return enc.Close()
	default:
		return perr.WithField(perr.InvalidInputf("unknown output format %q", *r.format), "output")
	}
}
