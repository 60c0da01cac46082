package writer

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/kataras/figma-tokens/pkg/token"
)

// tokenFilesPattern matches every file a token run can produce inside the tokens folder.
const tokenFilesPattern = "*.{ts,js,mjs,json,css}"

// Writer writes token files to a filesystem.
type Writer struct {
	fs afero.Fs
}

// New returns a Writer over fs. A nil fs writes to the operating system filesystem.
func New(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// FilePath returns the path op is written to.
func FilePath(op token.WriteOperation) string {
	return filepath.Join(op.Path, op.Name+"."+op.Format)
}

// Write renders op and writes it, creating the folder when needed. Token files are always
// replaced; it returns the written path.
func (w *Writer) Write(op token.WriteOperation) (string, error) {
	content, err := Render(op)
	if err != nil {
		return "", err
	}

	if err := w.fs.MkdirAll(op.Path, 0o755); err != nil {
		return "", errors.Errorf("failed to create output directory %q: %w", op.Path, err)
	}

	filePath := FilePath(op)
	if err := afero.WriteFile(w.fs, filePath, []byte(content), 0o644); err != nil {
		return "", errors.Errorf("failed to write %q: %w", filePath, err)
	}
	return filePath, nil
}

// WriteAll writes every operation in order. A failing file does not prevent the others from
// being written; the returned error aggregates all failures.
func (w *Writer) WriteAll(ops []token.WriteOperation) ([]string, error) {
	var (
		written []string
		errs    error
	)
	for _, op := range ops {
		filePath, err := w.Write(op)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		written = append(written, filePath)
	}
	return written, errs
}

// Refresh removes the token files left in folder by a previous run, so that tokens deleted
// from the design do not linger. Other files and subfolders are kept. It returns the removed
// paths; a missing folder is not an error.
func (w *Writer) Refresh(folder string) ([]string, error) {
	exists, err := afero.DirExists(w.fs, folder)
	if err != nil {
		return nil, errors.Errorf("failed to stat %q: %w", folder, err)
	}
	if !exists {
		return nil, nil
	}

	entries, err := afero.ReadDir(w.fs, folder)
	if err != nil {
		return nil, errors.Errorf("failed to list %q: %w", folder, err)
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := doublestar.Match(tokenFilesPattern, entry.Name()); !matched {
			continue
		}
		filePath := filepath.Join(folder, entry.Name())
		if err := w.fs.Remove(filePath); err != nil {
			return removed, errors.Errorf("failed to remove %q: %w", filePath, err)
		}
		removed = append(removed, filePath)
	}
	return removed, nil
}
