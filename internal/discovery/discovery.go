// Package discovery renders the link registry as a Zabbix low-level discovery
// document.
package discovery

import (
	"encoding/json"
	"fmt"
	"io"

	"grimm.is/linkprobe/internal/config"
)

// LLD macro names understood by the monitoring server.
const (
	MacroLinkName  = "{#LINKNAME}"
	MacroInterface = "{#INTERFACE}"
)

// Record is one discovered link.
type Record struct {
	LinkName  string `json:"{#LINKNAME}"`
	Interface string `json:"{#INTERFACE}"`
}

// Document is the top-level discovery payload.
type Document struct {
	Data []Record `json:"data"`
}

// Discover builds a document with one record per link, in registry order.
func Discover(links []config.Link) Document {
	doc := Document{Data: make([]Record, 0, len(links))}
	for _, l := range links {
		doc.Data = append(doc.Data, Record{LinkName: l.Name, Interface: l.Interface})
	}
	return doc
}

// Write encodes the document with two-space indentation and a trailing newline.
func (d Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to write discovery document: %w", err)
	}
	return nil
}

// Links converts the document back into the registry it was built from.
func (d Document) Links() []config.Link {
	links := make([]config.Link, 0, len(d.Data))
	for _, r := range d.Data {
		links = append(links, config.Link{Name: r.LinkName, Interface: r.Interface})
	}
	return links
}

// Parse decodes a discovery document.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse discovery document: %w", err)
	}
	if doc.Data == nil {
		return Document{}, fmt.Errorf("failed to parse discovery document: missing %q array", "data")
	}
	return doc, nil
}
