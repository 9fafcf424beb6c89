// Package sessionstore provides the device-resident key-value stores backing
// session persistence: one key per file so each key can be written and
// cleared independently.
package sessionstore

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	pkgerrors "github.com/pkg/errors"

	"github.com/tnhappykids/appcore/core/session"
)

type FileStore struct {
	fs billy.Filesystem
}

var _ session.Store = (*FileStore)(nil)

// NewFileStore roots the store at dir on the given filesystem: osfs on a
// device, memfs in tests.
func NewFileStore(fs billy.Filesystem, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return nil, pkgerrors.Wrap(err, "creating session dir")
	}
	sub, err := fs.Chroot(dir)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "entering session dir")
	}
	return &FileStore{fs: sub}, nil
}

// Set writes to a temp file and renames it over the key, so a crash
// mid-write leaves either the old value or the new one, never a torn file.
func (s *FileStore) Set(key, value string) error {
	tmp := key + ".tmp"
	if err := util.WriteFile(s.fs, tmp, []byte(value), 0o600); err != nil {
		return pkgerrors.Wrapf(err, "writing %s", key)
	}
	if err := s.fs.Rename(tmp, key); err != nil {
		return pkgerrors.Wrapf(err, "committing %s", key)
	}
	return nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := util.ReadFile(s.fs, key)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, pkgerrors.Wrapf(err, "reading %s", key)
	}
	return string(data), true, nil
}

func (s *FileStore) Delete(key string) error {
	if err := s.fs.Remove(key); err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrapf(err, "deleting %s", key)
	}
	return nil
}
