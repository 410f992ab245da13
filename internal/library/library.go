// Package library supplies the studio's recent content to the command
// palette.
package library

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/onair/internal/messages"
)

// Item is a piece of recorded content, newest first in provider order.
type Item struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DurationDisplay string `json:"duration"`
}

// Provider returns the current items. Implementations are queried once per
// palette open; they are not expected to push updates. Item ids are expected
// to be unique; consumers keep the first item for a repeated id.
type Provider interface {
	Items() ([]Item, error)
}

// Static is a Provider over a fixed slice.
type Static []Item

// Items implements Provider.
func (s Static) Items() ([]Item, error) {
	return append([]Item(nil), s...), nil
}

// document is the on-disk shape of a library file.
type document struct {
	Items []Item `json:"items"`
}

// FileProvider reads items from a YAML (or JSON) file on every call, so
// edits show up the next time the palette opens.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider for the library file at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the file the provider reads.
func (p *FileProvider) Path() string {
	return p.path
}

// Items implements Provider.
func (p *FileProvider) Items() ([]Item, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, messages.WrapError(err, "failed to read library %s", p.path)
	}
	return Parse(data)
}

// Parse decodes a library document and validates its items.
func Parse(data []byte) ([]Item, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, messages.WrapError(err, "failed to parse library")
	}

	seen := make(map[string]bool, len(doc.Items))
	for i, item := range doc.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("library item %d: id cannot be empty", i)
		}
		if item.Label == "" {
			return nil, fmt.Errorf("library item %q: label cannot be empty", item.ID)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("library item %q: duplicate id", item.ID)
		}
		seen[item.ID] = true
	}
	return doc.Items, nil
}

// Demo returns the content shown when no library file is configured.
func Demo() Static {
	return Static{
		{ID: "ep-118", Label: "Episode 118: Mixing on a budget", DurationDisplay: "48:12"},
		{ID: "ep-117", Label: "Episode 117: Guest interview with Ana", DurationDisplay: "1:02:40"},
		{ID: "promo-07", Label: "Spring promo cut", DurationDisplay: "0:45"},
		{ID: "ep-116", Label: "Episode 116: Room treatment", DurationDisplay: "39:05"},
		{ID: "raw-2291", Label: "Raw take 2291", DurationDisplay: "12:30"},
	}
}
