package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override replaces fields of a built-in Spec. Empty fields keep the
// built-in value.
type Override struct {
	// URL replaces the download location (mirror, local HTTP server).
	URL string `yaml:"url"`

	// Format replaces the archive format: "zip" or "tar.gz".
	Format string `yaml:"format"`
}

// apply folds the override into s.
func (o Override) apply(s *Spec) error {
	if o.URL != "" {
		s.URL = o.URL
	}
	switch o.Format {
	case "":
	case "zip":
		s.Format = Zip
	case "tar.gz":
		s.Format = TarGz
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, o.Format)
	}

	return nil
}

// Manifest is the YAML document accepted by LoadManifest:
//
//	datasets:
//	  waterbirds:
//	    url: https://mirror.internal/waterbirds.zip
//	  imagenet9:
//	    url: https://mirror.internal/in9.tar.gz
//	    format: tar.gz
type Manifest struct {
	Datasets map[string]Override `yaml:"datasets"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read manifest: %w", err)
	}

	var m Manifest
	if err = yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("dataset: parse manifest: %w", err)
	}

	return &m, nil
}
