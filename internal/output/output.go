// Package output writes generated artifacts atomically.
package output

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/alexhholmes/bitlayout/internal/errors"
)

// File is one artifact of a WriteAll batch
type File struct {
	Path string
	Data []byte
}

// WriteFile calls write with a temporary file created next to path and renames
// it over path only when write and the flush both succeed. On any failure the
// temporary file is removed and path is left untouched.
func WriteFile(path string, write func(w io.Writer) error) error {
	tmp, err := stage(path, write)
	if err != nil {
		return err
	}
	return commit(tmp, path)
}

// WriteBytes atomically replaces path with data
func WriteBytes(path string, data []byte) error {
	return WriteFile(path, writeData(data))
}

// WriteAll writes every file to a temporary sibling first and renames them into
// place only once all of them were written, so a failed write leaves every
// destination untouched.
func WriteAll(files ...File) error {
	staged := make([]string, 0, len(files))
	for _, f := range files {
		tmp, err := stage(f.Path, writeData(f.Data))
		if err != nil {
			for _, name := range staged {
				os.Remove(name)
			}
			return err
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := commit(staged[i], f.Path); err != nil {
			for _, name := range staged[i+1:] {
				os.Remove(name)
			}
			return err
		}
	}
	return nil
}

func writeData(data []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}
}

// stage writes a complete temporary file next to path and returns its name
func stage(path string, write func(w io.Writer) error) (_ string, err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return "", errors.Wrap(errors.PhaseOutput, errors.KindIO, err, "create temporary file")
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return "", err
	}
	if err = bw.Flush(); err != nil {
		return "", errors.Wrap(errors.PhaseOutput, errors.KindIO, err, "write "+path)
	}
	if err = tmp.Sync(); err != nil {
		return "", errors.Wrap(errors.PhaseOutput, errors.KindIO, err, "sync "+path)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return "", errors.Wrap(errors.PhaseOutput, errors.KindIO, err, "chmod "+path)
	}
	if err = tmp.Close(); err != nil {
		return "", errors.Wrap(errors.PhaseOutput, errors.KindIO, err, "close "+path)
	}
	return tmp.Name(), nil
}

func commit(tmp, path string) error {
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.PhaseOutput, errors.KindIO, err, "rename into "+path)
	}
	return nil
}
