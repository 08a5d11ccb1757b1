package scaffold

import (
	"os"

	"github.com/spf13/afero"
)

// AferoSink is a Sink backed by an afero filesystem.
type AferoSink struct {
	fs afero.Fs
}

// NewAferoSink wraps fs. Use afero.NewOsFs for real output and
// afero.NewMemMapFs in tests.
func NewAferoSink(fs afero.Fs) *AferoSink {
	return &AferoSink{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *AferoSink) Fs() afero.Fs {
	return s.fs
}

func (s *AferoSink) MkdirAll(path string) error {
	return s.fs.MkdirAll(path, 0o755)
}

func (s *AferoSink) WriteFile(path, content string) error {
	return afero.WriteFile(s.fs, path, []byte(content), 0o644)
}

func (s *AferoSink) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

func (s *AferoSink) IsDir(path string) (bool, error) {
	ok, err := afero.IsDir(s.fs, path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return ok, err
}
