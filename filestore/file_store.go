package filestore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore holds the raw bytes of uploaded media. Object names are the
// "{media_id}.{file_type}" names produced by model.Media.FileName.
type FileStore interface {
	Save(name string, content []byte) error
	Remove(name string) error
	URL(base, name string) string
}

// Local stores media as plain files under a single directory.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create media directory")
	}
	return &Local{dir: dir}, nil
}

// Dir is the directory files are written to, for static serving.
func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Save(name string, content []byte) error {
	if err := os.WriteFile(filepath.Join(l.dir, name), content, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write media file %s", name)
	}
	return nil
}

// Remove deletes the named file. A file that is already gone is not an
// error, the goal state is reached either way.
func (l *Local) Remove(name string) error {
	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "failed to remove media file %s", name)
	}
	return nil
}

func (l *Local) URL(base, name string) string {
	return fmt.Sprintf("%s/%s", base, name)
}

var _ FileStore = (*Local)(nil)
