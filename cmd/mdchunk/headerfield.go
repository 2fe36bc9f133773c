package main

import (
	"fmt"
	"strings"
)

// HeaderField names a frontmatter field to surface in the document-summary
// chunk's key-value header (pkg/header/builtin.KeyValueHeader).
type HeaderField struct {
	Path     string
	Label    string
	Required bool
}

// parseHeaderField parses the "path[!][:Label]" shorthand: a trailing "!"
// marks the field required, an optional ":Label" suffix overrides the
// display label (defaults to Path).
func parseHeaderField(s string) (HeaderField, error) {
	if s == "" {
		return HeaderField{}, fmt.Errorf("empty header field specification")
	}

	required := false
	if idx := strings.Index(s, "!:"); idx != -1 {
		return HeaderField{Path: s[:idx], Label: s[idx+2:], Required: true}, nil
	}
	if strings.HasSuffix(s, "!") {
		required = true
		s = strings.TrimSuffix(s, "!")
	}

	parts := strings.SplitN(s, ":", 2)
	path := strings.TrimSpace(parts[0])
	if path == "" {
		return HeaderField{}, fmt.Errorf("empty path in header field specification")
	}
	label := path
	if len(parts) == 2 {
		label = strings.TrimSpace(parts[1])
	}
	return HeaderField{Path: path, Label: label, Required: required}, nil
}

func (h HeaderField) String() string {
	req := ""
	if h.Required {
		req = "!"
	}
	if h.Label != h.Path {
		return fmt.Sprintf("%s%s:%s", h.Path, req, h.Label)
	}
	return fmt.Sprintf("%s%s", h.Path, req)
}
