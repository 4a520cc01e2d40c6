// Package fsutil holds the filesystem guards shared by the builders:
// existence checks for idempotence and atomic publication of artifacts.
package fsutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Exists reports whether path names an existing file and, if so, its size.
// Errors other than "not exist" are returned.
func Exists(path string) (bool, int64, error) {
	info, err := os.Stat(path)
	if err == nil {
		return true, info.Size(), nil
	}
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	return false, 0, errors.Wrapf(err, "stat %s", path)
}

// Publish writes an artifact through write into a temporary file next to path
// and renames it onto path once write and the flush succeed. On any failure the
// temporary file is removed and nothing appears at path.
func Publish(path string, write func(w io.Writer) (int64, error)) (int64, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, errors.Wrapf(err, "create temp file for %s", path)
	}
	tmpName := tmp.Name()

	fail := func(err error) (int64, error) {
		tmp.Close()
		os.Remove(tmpName)
		return 0, err
	}

	bw := bufio.NewWriterSize(tmp, 1<<20)
	n, err := write(bw)
	if err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(errors.Wrapf(err, "flush %s", tmpName))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return 0, errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return 0, errors.Wrapf(err, "rename %s to %s", tmpName, path)
	}
	return n, nil
}
