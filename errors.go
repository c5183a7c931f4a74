package txt2epub

import "errors"

// Sentinel errors returned by the txt2epub package.
var (
	// ErrUnsupportedEncoding indicates an encoding name outside the
	// supported set. It is reported when a decoder is constructed,
	// never mid-stream.
	ErrUnsupportedEncoding = errors.New("txt2epub: unsupported encoding")

	// ErrNoChapters indicates segmentation produced zero chapters.
	// Callers decide whether that is actionable; Convert treats it
	// as fatal.
	ErrNoChapters = errors.New("txt2epub: no chapters detected")
)
