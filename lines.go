package txt2epub

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

// defaultChunkSize is the raw read size for one source pull.
const defaultChunkSize = 64 * 1024

// LineReader yields decoded text lines from a byte source, one pull at a
// time. Lines are produced in source order with line terminators
// stripped (both "\n" and a trailing "\r").
//
// A LineReader is single-pass and forward-only: the source is read in
// fixed-size chunks and each line is yielded exactly once. Multi-byte
// sequences split across chunk boundaries are carried over and decoded
// whole; the chunk size never affects the produced line sequence.
//
// A LineReader is not safe for concurrent use by multiple goroutines.
type LineReader struct {
	src   io.Reader
	dec   transform.Transformer
	chunk []byte   // raw read buffer
	carry []byte   // undecoded bytes held across chunk boundaries
	dst   []byte   // decode destination buffer
	buf   string   // decoded text not yet emitted as a full line
	queue []string // completed lines awaiting Next
	enc   Encoding

	srcEOF  bool // source returned io.EOF
	drained bool // decoder flushed and buffer emitted
}

// NewLineReader returns a LineReader decoding r under enc. An encoding
// outside the supported set fails here with ErrUnsupportedEncoding,
// never mid-stream.
func NewLineReader(r io.Reader, enc Encoding) (*LineReader, error) {
	return newLineReaderSize(r, enc, defaultChunkSize)
}

// newLineReaderSize is NewLineReader with an explicit chunk size.
// Separated so tests can exercise chunk-boundary behaviour down to
// single-byte reads.
func newLineReaderSize(r io.Reader, enc Encoding, chunkSize int) (*LineReader, error) {
	dec, err := enc.newDecoder()
	if err != nil {
		return nil, err
	}
	if chunkSize < 1 {
		chunkSize = defaultChunkSize
	}
	dstSize := chunkSize * 2
	if dstSize < 4096 {
		dstSize = 4096
	}
	return &LineReader{
		src:   r,
		dec:   dec,
		enc:   enc,
		chunk: make([]byte, chunkSize),
		dst:   make([]byte, dstSize),
	}, nil
}

// Next returns the next line, or io.EOF after the last line. Any other
// error aborts the pass; the LineReader must not be reused after an
// error.
func (lr *LineReader) Next() (string, error) {
	for {
		if len(lr.queue) > 0 {
			line := lr.queue[0]
			lr.queue = lr.queue[1:]
			return line, nil
		}
		if lr.drained {
			return "", io.EOF
		}
		if err := lr.fill(); err != nil {
			return "", err
		}
	}
}

// fill reads one chunk from the source, decodes it, and moves completed
// lines into the queue. When the source is exhausted it flushes the
// decoder and emits the trailing buffer.
func (lr *LineReader) fill() error {
	if !lr.srcEOF {
		n, err := lr.src.Read(lr.chunk)
		if n > 0 {
			lr.carry = append(lr.carry, lr.chunk[:n]...)
		}
		if err == io.EOF {
			lr.srcEOF = true
		} else if err != nil {
			return fmt.Errorf("txt2epub: read source: %w", err)
		}
	}

	text, err := lr.decodeCarry(lr.srcEOF)
	if err != nil {
		return err
	}
	lr.buf += text
	lr.splitBuffer()

	if lr.srcEOF {
		// A single trailing remainder becomes the final line; an empty
		// buffer yields nothing.
		if lr.buf != "" {
			lr.queue = append(lr.queue, strings.TrimSuffix(lr.buf, "\r"))
			lr.buf = ""
		}
		lr.drained = true
	}
	return nil
}

// decodeCarry runs the streaming decoder over the carried raw bytes.
// With atEOF false, a trailing partial multi-byte sequence stays in
// carry until the next chunk arrives; with atEOF true the decoder is
// flushed.
func (lr *LineReader) decodeCarry(atEOF bool) (string, error) {
	if len(lr.carry) == 0 && !atEOF {
		return "", nil
	}
	var sb strings.Builder
	for {
		nDst, nSrc, err := lr.dec.Transform(lr.dst, lr.carry, atEOF)
		sb.Write(lr.dst[:nDst])
		lr.carry = lr.carry[nSrc:]
		switch err {
		case nil:
			if len(lr.carry) == 0 {
				return sb.String(), nil
			}
		case transform.ErrShortDst:
			// Destination filled; keep transforming the remainder.
		case transform.ErrShortSrc:
			if !atEOF {
				return sb.String(), nil
			}
			return "", fmt.Errorf("txt2epub: decode %s: truncated multi-byte sequence at end of input", lr.enc)
		default:
			return "", fmt.Errorf("txt2epub: decode %s: %w", lr.enc, err)
		}
	}
}

// splitBuffer moves every completed line out of the text buffer. The
// retained tail may be an incomplete line and never contains "\n".
func (lr *LineReader) splitBuffer() {
	for {
		i := strings.IndexByte(lr.buf, '\n')
		if i < 0 {
			return
		}
		lr.queue = append(lr.queue, strings.TrimSuffix(lr.buf[:i], "\r"))
		lr.buf = lr.buf[i+1:]
	}
}
