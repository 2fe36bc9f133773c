package main

import (
	"fmt"

	"github.com/wyvernzora/mdchunk/pkg/header"
	headerBuiltin "github.com/wyvernzora/mdchunk/pkg/header/builtin"
)

// createHeaderGenerator builds the header.ChunkHeader used for the
// hierarchy builder's synthetic document-summary chunk from the --header
// flag's raw "path[!][:Label]" entries. No entries means the YAML
// frontmatter renderer is used instead of a fixed field list.
func createHeaderGenerator(raw []string) (header.ChunkHeader, error) {
	if len(raw) == 0 {
		return headerBuiltin.FrontMatterYamlHeader(), nil
	}

	var opts []headerBuiltin.KeyValueHeaderOption
	for _, s := range raw {
		f, err := parseHeaderField(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --header %q: %w", s, err)
		}
		if f.Required {
			opts = append(opts, headerBuiltin.RequiredField(f.Path, f.Label))
		} else {
			opts = append(opts, headerBuiltin.OptionalField(f.Path, f.Label))
		}
	}
	return headerBuiltin.KeyValueHeader(opts...), nil
}
