package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads and schema-checks manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a manifest from raw bytes. The ext argument selects
// the codec (".yaml", ".yml", or ".json"). It returns a ParseError for a
// document that is not well-formed and a SchemaError when a required field
// is missing or has the wrong type; it never returns a partially populated
// manifest alongside an error.
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Manifest, error) {
	ext = strings.ToLower(ext)

	var m Manifest
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) {
				return nil, &SchemaError{Reason: "field has the wrong type", Err: err}
			}
			return nil, &ParseError{Err: err}
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return nil, &SchemaError{Path: typeErr.Field, Reason: "field has the wrong type", Err: err}
			}
			return nil, &ParseError{Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}

	if err := checkSchema(&m); err != nil {
		return nil, err
	}

	normalize(&m)

	return &m, nil
}

// normalize collapses explicitly empty sequences and mappings to nil so
// that an omitted key and an empty one decode to the same entity graph.
// Without this, a marshal/load cycle would not preserve the graph: the
// encoder omits empty fields, so "hooks: []" would come back as a missing
// key on reload.
func normalize(m *Manifest) {
	if len(m.Repos) == 0 {
		m.Repos = nil
	}
	if len(m.DefaultStages) == 0 {
		m.DefaultStages = nil
	}
	if len(m.DefaultLanguageVersion) == 0 {
		m.DefaultLanguageVersion = nil
	}
	for i := range m.Repos {
		r := &m.Repos[i]
		if len(r.Hooks) == 0 {
			r.Hooks = nil
		}
		for j := range r.Hooks {
			h := &r.Hooks[j]
			if len(h.Args) == 0 {
				h.Args = nil
			}
			if len(h.Stages) == 0 {
				h.Stages = nil
			}
			if len(h.AdditionalDependencies) == 0 {
				h.AdditionalDependencies = nil
			}
		}
	}
}

// checkSchema enforces the fields the format marks required: every repo
// entry names a location and every hook activation names an id. Revisions
// are deliberately not checked here; a missing rev is a validation concern,
// not a schema one.
func checkSchema(m *Manifest) error {
	for i, r := range m.Repos {
		if r.Repo == "" {
			return &SchemaError{
				Path:   fmt.Sprintf("repos[%d]", i),
				Reason: `missing required field "repo"`,
			}
		}
		for j, h := range r.Hooks {
			if h.ID == "" {
				return &SchemaError{
					Path:   fmt.Sprintf("repos[%d].hooks[%d]", i, j),
					Reason: `missing required field "id"`,
				}
			}
		}
	}
	return nil
}
