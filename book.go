package txt2epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// bookLanguage is the fixed dc:language of generated books.
const bookLanguage = "zh"

// Book assembles chapters and metadata into an EPUB 3 archive.
//
// A Book is not safe for concurrent use by multiple goroutines.
type Book struct {
	Title  string
	Author string

	language   string
	identifier string
	chapters   []Chapter
	cover      []byte
	coverMime  string
}

// NewBook returns a Book with the given metadata and a unique identifier
// derived from the current time.
func NewBook(title, author string) *Book {
	return &Book{
		Title:      title,
		Author:     author,
		language:   bookLanguage,
		identifier: newIdentifier(time.Now()),
	}
}

// newIdentifier derives a unique book identifier from the current time.
// Version 1 UUIDs are time-based; if generation fails the raw nanosecond
// timestamp is used instead.
func newIdentifier(now time.Time) string {
	if id, err := uuid.NewUUID(); err == nil {
		return "urn:uuid:" + id.String()
	}
	return fmt.Sprintf("urn:uuid:%d", now.UnixNano())
}

// Identifier returns the book's unique identifier.
func (b *Book) Identifier() string {
	return b.identifier
}

// Chapters returns the chapters added so far, in order.
func (b *Book) Chapters() []Chapter {
	return append([]Chapter(nil), b.chapters...)
}

// AddChapter appends one chapter to the book.
func (b *Book) AddChapter(ch Chapter) {
	b.chapters = append(b.chapters, ch)
}

// AddChapters appends chapters to the book, preserving order.
func (b *Book) AddChapters(chapters []Chapter) {
	b.chapters = append(b.chapters, chapters...)
}

// SetCover sets the cover image. mediaType must be "image/jpeg" or
// "image/png"; anything else is treated as JPEG.
func (b *Book) SetCover(data []byte, mediaType string) {
	b.cover = data
	b.coverMime = mediaType
}

// coverName returns the OPF-relative cover file name.
func (b *Book) coverName() string {
	if strings.Contains(b.coverMime, "png") {
		return "cover.png"
	}
	return "cover.jpg"
}

// Write writes the book as an EPUB archive to w. The mimetype entry is
// the first entry and is stored uncompressed; every other entry is
// deflated. A book with zero chapters still produces a structurally
// valid (if empty) archive.
func (b *Book) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := writeStored(zw, mimetypePath, []byte(epubMimetype)); err != nil {
		return err
	}

	entries := []struct {
		name string
		data []byte
	}{
		{containerPath, []byte(containerDocument)},
		{opfPath, b.buildOPF(time.Now())},
		{ncxPath, b.buildNCX()},
		{stylePath, []byte(styleCSS)},
	}
	if len(b.cover) > 0 {
		entries = append(entries, struct {
			name string
			data []byte
		}{contentDir + "/" + b.coverName(), b.cover})
	}
	for i, ch := range b.chapters {
		entries = append(entries, struct {
			name string
			data []byte
		}{contentDir + "/" + chapterFilename(i), chapterXHTML(ch)})
	}

	for _, e := range entries {
		if err := writeDeflated(zw, e.name, e.data); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("txt2epub: close archive: %w", err)
	}
	return nil
}

// Bytes renders the book and returns the archive bytes.
func (b *Book) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert runs the full pipeline over r: decode under enc, segment with
// pattern, and return a Book carrying the resulting chapters. Returns
// ErrNoChapters when segmentation finds nothing.
//
// Each call constructs its own decoder; running a bounded preview first
// and then Convert requires two fresh readers over the source, never a
// shared one.
func Convert(r io.Reader, enc Encoding, pattern *regexp.Regexp, title, author string) (*Book, error) {
	lr, err := NewLineReader(r, enc)
	if err != nil {
		return nil, err
	}
	chapters, err := Segment(lr, pattern)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, ErrNoChapters
	}
	b := NewBook(title, author)
	b.AddChapters(chapters)
	return b, nil
}
