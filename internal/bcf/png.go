package bcf

import "bytes"

// pngSignature is the first four bytes of every valid PNG file.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47}

// IsPNG reports whether data starts with the PNG magic number. Snapshot
// binaries that fail this check are rejected before storage.
func IsPNG(data []byte) bool {
	return len(data) >= len(pngSignature) && bytes.HasPrefix(data, pngSignature)
}
