package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// PDFHeader is the magic prefix content sniffing recognizes as a PDF.
const PDFHeader = "%PDF-1.4\n"

// PDFBytes returns a minimal PDF-looking payload of at least size bytes.
func PDFBytes(size int) []byte {
	body := []byte(PDFHeader)
	if pad := size - len(body); pad > 0 {
		body = append(body, bytes.Repeat([]byte{0x42}, pad)...)
	}
	return body
}

// WritePDF writes PDFBytes(size) to dir/name and returns the full path.
func WritePDF(t testing.TB, dir, name string, size int) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, name), PDFBytes(size))
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
