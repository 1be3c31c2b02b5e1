// Package content loads and indexes the teachable concept catalog.
// The catalog is built once at startup and shared read-only across
// sessions; it is never mutated at runtime.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/teachthetutor/backend/internal/domain/concept"
)

var (
	// ErrContentLoad wraps every failure to read, parse, or validate the
	// content resource. Callers degrade to an empty catalog instead of
	// crashing the process.
	ErrContentLoad = errors.New("content load failed")

	// ErrNotFound is returned by exact-id lookups.
	ErrNotFound = errors.New("concept not found")

	// ErrEmptyCatalog is returned by fuzzy lookup when there is nothing
	// to fall back to.
	ErrEmptyCatalog = errors.New("no concepts available")
)

// Catalog is an immutable ordered index of concepts.
type Catalog struct {
	concepts []concept.Concept
	byID     map[string]int
}

// Load reads, schema-validates, and indexes the content file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrContentLoad, path, err)
	}

	sch, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentLoad, err)
	}

	// The jsonschema library validates a parsed JSON value, not raw bytes.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in %s: %v", ErrContentLoad, path, err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s does not match content schema: %v", ErrContentLoad, path, err)
	}

	var concepts []concept.Concept
	if err := json.Unmarshal(data, &concepts); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrContentLoad, path, err)
	}

	return New(concepts)
}

// New builds a catalog from already-decoded concepts, enforcing the
// per-concept invariants and id uniqueness.
func New(concepts []concept.Concept) (*Catalog, error) {
	byID := make(map[string]int, len(concepts))
	for i := range concepts {
		c := &concepts[i]
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentLoad, err)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate concept id %q", ErrContentLoad, c.ID)
		}
		byID[c.ID] = i
	}
	return &Catalog{concepts: concepts, byID: byID}, nil
}

// Len returns the number of concepts in the catalog.
func (c *Catalog) Len() int {
	return len(c.concepts)
}

// Concepts returns the concepts in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Concepts() []concept.Concept {
	return c.concepts
}

// FindByID returns the concept with the exact id.
func (c *Catalog) FindByID(id string) (concept.Concept, error) {
	if i, ok := c.byID[id]; ok {
		return c.concepts[i], nil
	}
	return concept.Concept{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// FindByTitleOrID resolves noisy conversational input to a concept:
// exact id, then exact case-insensitive title, then title substring,
// then the first concept in catalog order. It only errors when the
// catalog is empty.
func (c *Catalog) FindByTitleOrID(query string) (concept.Concept, error) {
	if len(c.concepts) == 0 {
		return concept.Concept{}, ErrEmptyCatalog
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.concepts[0], nil
	}

	if i, ok := c.byID[q]; ok {
		return c.concepts[i], nil
	}
	for _, cc := range c.concepts {
		if strings.ToLower(cc.Title) == q {
			return cc, nil
		}
	}
	for _, cc := range c.concepts {
		if strings.Contains(strings.ToLower(cc.Title), q) {
			return cc, nil
		}
	}
	return c.concepts[0], nil
}

// Listing renders the catalog as "- id: title" lines for the
// conversational layer to speak.
func (c *Catalog) Listing() string {
	if len(c.concepts) == 0 {
		return "No concepts available."
	}
	var b strings.Builder
	b.WriteString("Available concepts:")
	for _, cc := range c.concepts {
		b.WriteString("\n- ")
		b.WriteString(cc.ID)
		b.WriteString(": ")
		b.WriteString(cc.Title)
	}
	return b.String()
}
