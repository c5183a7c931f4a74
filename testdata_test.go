package txt2epub

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sliceSource is a LineSource over a fixed slice of lines.
type sliceSource struct {
	lines []string
	pos   int
}

func (s *sliceSource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// testEncode converts UTF-8 text into the given encoding for decoder
// fixtures. The text must be representable in the target encoding.
func testEncode(t testing.TB, enc Encoding, s string) []byte {
	t.Helper()

	var e *encoding.Encoder
	switch enc {
	case UTF8:
		return []byte(s)
	case UTF16LE:
		e = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	case UTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case GBK:
		e = simplifiedchinese.GBK.NewEncoder()
	case Big5:
		e = traditionalchinese.Big5.NewEncoder()
	case ShiftJIS:
		e = japanese.ShiftJIS.NewEncoder()
	case EUCKR:
		e = korean.EUCKR.NewEncoder()
	default:
		t.Fatalf("testEncode: unknown encoding %q", enc)
	}

	out, _, err := transform.Bytes(e, []byte(s))
	if err != nil {
		t.Fatalf("testEncode(%s): %v", enc, err)
	}
	return out
}

// unpackArchive opens a generated archive and returns the entry names in
// archive order together with the decompressed contents.
func unpackArchive(t *testing.T, data []byte) ([]string, map[string][]byte) {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}

	names := make([]string, 0, len(zr.File))
	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		names = append(names, f.Name)
		files[f.Name] = content
	}
	return names, files
}

// buildTestBook returns a Book with two fixed chapters for packaging tests.
func buildTestBook() *Book {
	b := NewBook("测试书", "测试作者")
	b.AddChapters([]Chapter{
		{Title: "第一章 开始", Lines: []string{"内容A"}},
		{Title: "第二章 继续", Lines: []string{"内容B", "内容C"}},
	})
	return b
}
