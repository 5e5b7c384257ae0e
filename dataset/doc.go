// Package dataset fetches and unpacks the benchmark datasets used for
// bias analysis: CelebA, UTKFace, Waterbirds, and ImageNet-9.
//
// What:
//
//   - Fetcher downloads a named dataset archive over HTTP and extracts it
//     under a root directory, then removes the archive.
//   - Built-in specs carry the canonical mirror URL and archive format for
//     each dataset; a YAML manifest can override URLs per dataset for
//     mirrors or air-gapped setups.
//   - Zip and tar.gz archives are supported; extraction rejects entries
//     that would escape the destination directory.
//
// The numeric packages of this module never import dataset: downloading
// happens before any statistics run, and the co-occurrence builders stay
// free of I/O.
//
// Errors:
//
//   - ErrUnknownDataset: the requested name has no built-in spec.
//   - ErrBadArchivePath: an archive entry resolves outside the destination.
//   - ErrBadStatus: the download response was not 200 OK.
//
// All other failures are wrapped I/O errors with "dataset: ..." context.
package dataset
