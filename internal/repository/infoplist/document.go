package infoplist

import (
	"maps"
	"slices"

	"howett.net/plist"

	"github.com/oshokin/plug-resources/internal/domain/bundle"
)

// Document is an Info.plist dictionary bound to a file path.
type Document struct {
	// path is where the document is loaded from and saved to.
	path string
	// format is the plist serialization format (XML, binary, OpenStep).
	format int
	// values is the root dictionary.
	values map[string]any
}

// NewDocument creates an XML document for path holding a copy of values.
func NewDocument(path string, values map[string]any) *Document {
	doc := &Document{
		path:   path,
		format: plist.XMLFormat,
		values: make(map[string]any, len(values)),
	}

	maps.Copy(doc.values, values)

	return doc
}

// Path returns the file the document belongs to.
func (d *Document) Path() string {
	return d.path
}

// Format returns the plist format used when saving.
func (d *Document) Format() int {
	return d.format
}

// Get returns the raw value of key.
func (d *Document) Get(key string) (any, bool) {
	value, ok := d.values[key]

	return value, ok
}

// GetString returns the value of key when it is a string.
func (d *Document) GetString(key string) (string, bool) {
	value, ok := d.values[key].(string)

	return value, ok
}

// GetBool returns the value of key when it is a boolean.
func (d *Document) GetBool(key string) (bool, bool) {
	value, ok := d.values[key].(bool)

	return value, ok
}

// Set stores value under key, replacing any previous value.
func (d *Document) Set(key string, value any) {
	d.values[key] = value
}

// Keys returns the sorted keys of the root dictionary.
func (d *Document) Keys() []string {
	return slices.Sorted(maps.Keys(d.values))
}

// Apply sets every field. Other keys are left as loaded.
func (d *Document) Apply(fields []bundle.Field) {
	for _, field := range fields {
		d.Set(field.Key, field.Value)
	}
}
