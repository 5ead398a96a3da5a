package pipeline

import (
	"fmt"
	"io"
	"os"
)

// Transfer copies src to dst, or moves it when move is set, and returns the
// number of bytes written. An existing dst is overwritten. A move first
// tries a rename; if that fails (for example across devices) the file is
// copied and the source removed.
func Transfer(src, dst string, move bool) (int64, error) {
	if !move {
		return copyFile(src, dst)
	}
	fi, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if err := os.Rename(src, dst); err == nil {
		return fi.Size(), nil
	}
	n, err := copyFile(src, dst)
	if err != nil {
		return n, err
	}
	if err := os.Remove(src); err != nil {
		return n, fmt.Errorf("remove source after copy: %w", err)
	}
	return n, nil
}

// copyFile copies contents and permission bits.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return 0, err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return n, err
	}
	if err := os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return n, err
	}
	return n, nil
}
