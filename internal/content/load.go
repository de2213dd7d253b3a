package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoContentFile is returned by Load when the override file does not exist.
var ErrNoContentFile = errors.New("content: override file not found")

// ValidationError is returned when content fields are missing or inconsistent.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Load reads a YAML override file and applies it on top of Default.
// Keys absent from the file keep their default values; lists present in the file
// replace the default list entirely.
func Load(path string) (Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return Site{}, fmt.Errorf("%w: %s", ErrNoContentFile, path)
	}
	if err != nil {
		return Site{}, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML content over Default and validates the result.
func Parse(raw []byte) (Site, error) {
	site := Default()
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, fmt.Errorf("content: parse yaml: %w", err)
	}
	if err := Validate(site); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate checks that nav entries target known sections and descriptive fields are set.
func Validate(site Site) error {
	var fields []string
	sections := site.SectionSet()
	for i, entry := range site.Nav {
		if strings.TrimSpace(entry.Label) == "" {
			fields = append(fields, fmt.Sprintf("nav[%d].label", i))
		}
		id, ok := entry.Fragment()
		if !ok || !sections.Has(id) {
			fields = append(fields, fmt.Sprintf("nav[%d].href", i))
		}
	}
	for i, entry := range site.Contact.Entries {
		if strings.TrimSpace(entry.Label) == "" {
			fields = append(fields, fmt.Sprintf("contact.entries[%d].label", i))
		}
		if strings.TrimSpace(entry.Value) == "" {
			fields = append(fields, fmt.Sprintf("contact.entries[%d].value", i))
		}
	}
	if strings.TrimSpace(site.Brand.Name) == "" {
		fields = append(fields, "brand.name")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}
