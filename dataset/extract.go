package dataset

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// extract unpacks src into dst according to the archive format.
func extract(src, dst string, f Format) error {
	switch f {
	case Zip:
		return extractZip(src, dst)
	case TarGz:
		return extractTarGz(src, dst)
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

// securePath joins name under dst and rejects entries that resolve
// outside it (zip-slip). A "./" entry resolving to dst itself is allowed;
// tar archives routinely carry one for the root directory.
func securePath(dst, name string) (string, error) {
	p := filepath.Join(dst, filepath.FromSlash(name))
	if p != filepath.Clean(dst) && !strings.HasPrefix(p, filepath.Clean(dst)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %q", ErrBadArchivePath, name)
	}
	return p, nil
}

// writeEntry copies one archive entry to path, creating parent directories.
func writeEntry(path string, mode os.FileMode, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: create entry dir: %w", err)
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("dataset: create entry: %w", err)
	}
	if _, err = io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("dataset: write entry: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("dataset: close entry: %w", err)
	}

	return nil
}

func extractZip(src, dst string) error {
	zr, err := zip.OpenReader(src)
	// Depending on GODEBUG, the stdlib may itself flag escaping entry names;
	// the reader is still usable and securePath below re-detects the entry.
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return fmt.Errorf("dataset: open zip: %w", err)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		path, err := securePath(dst, entry.Name)
		if err != nil {
			return err
		}
		if entry.FileInfo().IsDir() {
			if err = os.MkdirAll(path, 0o755); err != nil {
				return fmt.Errorf("dataset: create dir: %w", err)
			}
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("dataset: open zip entry: %w", err)
		}
		err = writeEntry(path, entry.Mode(), rc)
		rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func extractTarGz(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("dataset: open archive: %w", err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("dataset: open gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if errors.Is(err, tar.ErrInsecurePath) {
				return fmt.Errorf("%w: %q", ErrBadArchivePath, hdr.Name)
			}
			return fmt.Errorf("dataset: read tar: %w", err)
		}

		path, err := securePath(dst, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(path, 0o755); err != nil {
				return fmt.Errorf("dataset: create dir: %w", err)
			}
		case tar.TypeReg:
			if err = writeEntry(path, os.FileMode(hdr.Mode), tr); err != nil {
				return err
			}
		default:
			// symlinks and special files are not expected in these
			// archives; skip rather than create escape hatches.
		}
	}
}
