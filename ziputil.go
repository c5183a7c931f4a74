package txt2epub

import (
	"archive/zip"
	"fmt"
)

// writeStored adds an uncompressed entry to the archive. The container
// format requires the mimetype entry to be stored, never deflated, so
// readers can identify the file from its leading bytes.
func writeStored(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("txt2epub: create %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("txt2epub: write %s: %w", name, err)
	}
	return nil
}

// writeDeflated adds a compressed entry to the archive.
func writeDeflated(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("txt2epub: create %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("txt2epub: write %s: %w", name, err)
	}
	return nil
}
