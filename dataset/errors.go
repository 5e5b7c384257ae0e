package dataset

import "errors"

var (
	// ErrUnknownDataset indicates a name with no built-in spec; see Names.
	ErrUnknownDataset = errors.New("dataset: unknown dataset name")

	// ErrBadArchivePath indicates an archive entry that would extract
	// outside the destination directory.
	ErrBadArchivePath = errors.New("dataset: archive entry escapes destination")

	// ErrBadStatus indicates a non-200 HTTP response for a download.
	ErrBadStatus = errors.New("dataset: unexpected HTTP status")

	// ErrBadFormat indicates an unrecognized archive format value.
	ErrBadFormat = errors.New("dataset: unknown archive format")
)
