package figma

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Page names the token pipeline looks for.
const (
	PageDesignTokens = "Design Tokens"
	PageGraphics     = "Graphics"
)

// ErrPageNotFound is returned by FindPage when the document has no page of that name.
var ErrPageNotFound = errors.Base("page not found")

// Decode reads a JSON export of a Figma file.
func Decode(r io.Reader) (*FileResponse, error) {
	var fileResp FileResponse
	if err := json.NewDecoder(r).Decode(&fileResp); err != nil {
		return nil, errors.Errorf("failed to parse figma document: %w", err)
	}
	return &fileResp, nil
}

// LoadFile reads a JSON export previously saved with SaveFile or downloaded by hand.
func LoadFile(fsys afero.Fs, path string) (*FileResponse, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Errorf("open figma document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// SaveFile writes the document as indented JSON, creating parent directories as needed.
func SaveFile(fsys afero.Fs, path string, fileResp *FileResponse) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Errorf("failed to create directory for %q: %w", path, err)
	}

	data, err := json.MarshalIndent(fileResp, "", " ")
	if err != nil {
		return errors.Errorf("failed to encode figma document: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return errors.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// FindPage returns the children of the first page (CANVAS) whose name matches, ignoring case
// and surrounding whitespace.
func FindPage(document *Node, name string) ([]Node, error) {
	if document == nil {
		return nil, errors.WithDetails(ErrPageNotFound, "page", name)
	}

	want := strings.ToLower(strings.TrimSpace(name))
	for i := range document.Children {
		page := &document.Children[i]
		if strings.ToLower(strings.TrimSpace(page.Name)) == want {
			if page.Children == nil {
				return []Node{}, nil
			}
			return page.Children, nil
		}
	}

	return nil, errors.WithDetails(ErrPageNotFound, "page", name)
}
