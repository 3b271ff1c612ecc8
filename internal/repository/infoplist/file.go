package infoplist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// Repository defines persistence operations for Info.plist documents.
type Repository interface {
	Load(ctx context.Context, path string) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// DefaultFileMode is used when saving a document that does not exist yet.
const DefaultFileMode os.FileMode = 0o644

var (
	// ErrDocument marks a missing, unreadable or undecodable document.
	ErrDocument = errors.New("info.plist document error")
	// ErrDocumentNotFound is returned when the document file does not exist.
	ErrDocumentNotFound = fmt.Errorf("%w: not found", ErrDocument)
)

// FileRepository reads and writes Info.plist files on disk.
type FileRepository struct {
	// indent is used for XML output.
	indent string
}

// NewFileRepository creates a repository writing tab-indented XML.
func NewFileRepository() *FileRepository {
	return &FileRepository{
		indent: "\t",
	}
}

// Load reads and decodes the document at path. The root must be a dictionary.
func (r *FileRepository) Load(_ context.Context, path string) (*Document, error) {
	path = filepath.Clean(path)

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}

		return nil, fmt.Errorf("%w: read %s: %w", ErrDocument, path, err)
	}

	var values map[string]any

	format, err := plist.Unmarshal(contents, &values)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrDocument, path, err)
	}

	if values == nil {
		return nil, fmt.Errorf("%w: decode %s: root is not a dictionary", ErrDocument, path)
	}

	return &Document{
		path:   path,
		format: format,
		values: values,
	}, nil
}

// Save encodes the document in its original format and writes it back,
// keeping the file mode of an existing file.
func (r *FileRepository) Save(_ context.Context, doc *Document) error {
	var (
		data []byte
		err  error
	)

	if doc.format == plist.XMLFormat {
		data, err = plist.MarshalIndent(doc.values, doc.format, r.indent)
	} else {
		data, err = plist.Marshal(doc.values, doc.format)
	}

	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrDocument, doc.path, err)
	}

	mode := DefaultFileMode
	if info, statErr := os.Stat(doc.path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err = os.WriteFile(doc.path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", doc.path, err)
	}

	return nil
}
