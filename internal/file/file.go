// Package file reads and writes local files through a replaceable file system.
package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// FS is the file system used by all functions in this package.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadString reads the content of a file as a string with surrounding spaces trimmed.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	return string(bytes.TrimSpace(body)), true
}

// ErrNotExist is returned by [Read] when the file does not exist.
var ErrNotExist = os.ErrNotExist

// Read reads the whole content of a file.
// A missing file gives an error satisfying errors.Is(err, [ErrNotExist]).
func Read(path string) ([]byte, error) {
	body, err := afero.ReadFile(FS, path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return body, nil
}

// WriteAtomic replaces the file at path with data.
//
// The data is first written to a temporary file in the same directory, which is
// then renamed over the destination. An interrupted write leaves the old file intact.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := afero.TempFile(FS, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	_, errWrite := tmp.Write(data)
	errSync := tmp.Sync()
	errClose := tmp.Close()
	if err := errors.Join(errWrite, errSync, errClose); err != nil {
		_ = FS.Remove(tmpName)
		return fmt.Errorf("write %q: %w", tmpName, err)
	}

	if err := FS.Chmod(tmpName, perm); err != nil {
		_ = FS.Remove(tmpName)
		return fmt.Errorf("chmod %q: %w", tmpName, err)
	}

	if err := FS.Rename(tmpName, path); err != nil {
		_ = FS.Remove(tmpName)
		return fmt.Errorf("rename %q to %q: %w", tmpName, path, err)
	}

	return nil
}
