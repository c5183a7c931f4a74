// Package txt2epub converts plain-text novels into EPUB 3 e-books.
//
// The pipeline has four stages: encoding detection, streaming line
// decoding, regex-driven chapter segmentation, and EPUB packaging.
// Each stage is a pure function or a single-pass iterator taking
// explicit inputs, so the stages compose freely and test without a UI
// or CLI harness.
//
// # Detecting the Encoding
//
// [DetectEncoding] inspects a byte prefix and returns a best-guess
// [Encoding]: byte order marks first, then a double-byte heuristic for
// GBK-like text, falling back to [UTF8]:
//
//	enc := txt2epub.DetectEncoding(data[:4096])
//
// The caller may override the guess with any supported Encoding;
// [ParseEncoding] validates user-supplied names.
//
// # Streaming Lines
//
// [NewLineReader] wraps a byte source and yields decoded lines one pull
// at a time, reading the source in 64 KiB chunks. Multi-byte sequences
// split across chunk boundaries are decoded whole, so the produced line
// sequence is identical for any chunk size:
//
//	lr, err := txt2epub.NewLineReader(bytes.NewReader(data), enc)
//	for {
//	    line, err := lr.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // ...
//	}
//
// A LineReader is single-pass. Running a bounded preview and then a full
// conversion means two fresh LineReaders over two fresh reads of the
// source.
//
// # Segmenting Chapters
//
// [Segment] partitions the line stream into [Chapter] values using a
// caller-compiled boundary pattern. Lines before the first match land in
// an implicit preface chapter titled "序言"; chapters without content
// are discarded. [SegmentLimit] caps the pass for previews.
//
//	pattern := regexp.MustCompile(`^第.+章`)
//	chapters, err := txt2epub.Segment(lr, pattern)
//
// # Writing the Book
//
// [NewBook] creates a book with a time-derived unique identifier;
// [Book.Write] emits the archive: the stored mimetype entry first, then
// container descriptor, package document, NCX navigation document,
// stylesheet, and one XHTML content document per chapter. All
// user-supplied text is XML-escaped on the way in.
//
//	book := txt2epub.NewBook("书名", "作者")
//	book.AddChapters(chapters)
//	err = book.Write(f)
//
// [Convert] composes the whole pipeline in one call.
//
// # Error Handling
//
// The package defines sentinel errors for the two caller-visible
// failure kinds:
//   - [ErrUnsupportedEncoding] – an encoding name outside the supported set
//   - [ErrNoChapters] – segmentation produced zero chapters
//
// Invalid boundary patterns are the caller's concern: patterns are
// compiled before the segmenter is invoked.
package txt2epub
