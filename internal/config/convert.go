package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

// FromStore returns the document that loads back into an identical store.
func FromStore(s *nav.Store) *Document {
	return FromSpec(s.Spec())
}

// FromSpec converts a composite literal into its on-disk form. Labels are written as
// nested maps.
func FromSpec(spec nav.Spec) *Document {
	doc := &Document{
		Version:  Version,
		Site:     spec.Site,
		Nav:      spec.Nav,
		Sidebar:  spec.Sidebar,
		Search:   spec.Search,
		Outline:  spec.Outline,
		Markdown: spec.Markdown,
	}
	if len(spec.Labels) > 0 {
		doc.Labels = spec.Labels.Nested()
	}
	return doc
}

// Marshal encodes doc as YAML with two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}
