package dataset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

// Format identifies the archive format of a dataset download.
type Format int

const (
	// Zip archives are unpacked with archive/zip.
	Zip Format = iota

	// TarGz archives are unpacked with a gzip reader over archive/tar.
	TarGz
)

// ext returns the file extension used for the temporary archive.
func (f Format) ext() string {
	if f == TarGz {
		return ".tar.gz"
	}
	return ".zip"
}

// Spec describes one downloadable dataset.
type Spec struct {
	// Name is the registry key and the basename of the temporary archive.
	Name string

	// URL is the archive location.
	URL string

	// Format selects the extractor.
	Format Format

	// RenameFrom/RenameTo, when both set, rename one extracted directory
	// afterwards (CelebA unpacks as img_align_celeba but is consumed as
	// celeba).
	RenameFrom string
	RenameTo   string
}

// builtin returns the canonical spec set, keyed by name.
func builtin() map[string]Spec {
	return map[string]Spec{
		"celeba": {
			Name:       "celeba",
			URL:        "https://www.kaggle.com/api/v1/datasets/download/jessicali9530/celeba-dataset",
			Format:     Zip,
			RenameFrom: "img_align_celeba",
			RenameTo:   "celeba",
		},
		"utkface": {
			Name:   "utkface",
			URL:    "https://www.kaggle.com/api/v1/datasets/download/jangedoo/utkface-new",
			Format: Zip,
		},
		"waterbirds": {
			Name:   "waterbirds",
			URL:    "https://drive.google.com/uc?id=1xPNYQskEXuPhuqT5Hj4hXPeJa9jh7liL",
			Format: Zip,
		},
		"imagenet9": {
			Name:   "imagenet9",
			URL:    "https://github.com/MadryLab/backgrounds_challenge/releases/download/data/backgrounds_challenge_data.tar.gz",
			Format: TarGz,
		},
	}
}

// Names returns the built-in dataset names in sorted order.
func Names() []string {
	specs := builtin()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Fetcher downloads and unpacks datasets under Root. The zero value is
// not usable; Root must be set. Client, Log, and Overrides are optional.
type Fetcher struct {
	// Root is the directory datasets are extracted into; created if absent.
	Root string

	// Client overrides http.DefaultClient (tests, proxies, timeouts).
	Client *http.Client

	// Log overrides logrus.StandardLogger().
	Log *logrus.Logger

	// Overrides replaces built-in spec fields per dataset name, typically
	// loaded from a YAML manifest.
	Overrides map[string]Override
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) log() *logrus.Logger {
	if f.Log != nil {
		return f.Log
	}
	return logrus.StandardLogger()
}

// spec resolves a dataset name against built-ins plus overrides.
func (f *Fetcher) spec(name string) (Spec, error) {
	s, ok := builtin()[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	if ov, ok := f.Overrides[name]; ok {
		if err := ov.apply(&s); err != nil {
			return Spec{}, err
		}
	}

	return s, nil
}

// Fetch downloads the named dataset into f.Root, extracts it, applies the
// post-extract rename when the spec has one, and deletes the archive.
// The context cancels the download; extraction is local and runs to
// completion once the archive is on disk.
func (f *Fetcher) Fetch(ctx context.Context, name string) error {
	spec, err := f.spec(name)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(f.Root, 0o755); err != nil {
		return fmt.Errorf("dataset: create root: %w", err)
	}

	log := f.log().WithFields(logrus.Fields{"dataset": spec.Name, "root": f.Root})
	archive := filepath.Join(f.Root, spec.Name+spec.Format.ext())

	log.WithField("url", spec.URL).Info("downloading")
	if err = f.download(ctx, spec.URL, archive); err != nil {
		return err
	}

	log.WithField("archive", archive).Info("extracting")
	if err = extract(archive, f.Root, spec.Format); err != nil {
		return err
	}

	if spec.RenameFrom != "" && spec.RenameTo != "" {
		from := filepath.Join(f.Root, spec.RenameFrom)
		to := filepath.Join(f.Root, spec.RenameTo)
		if _, statErr := os.Stat(from); statErr == nil {
			if err = os.Rename(from, to); err != nil {
				return fmt.Errorf("dataset: rename extracted dir: %w", err)
			}
		}
	}

	if err = os.Remove(archive); err != nil {
		return fmt.Errorf("dataset: remove archive: %w", err)
	}
	log.Info("done")

	return nil
}
