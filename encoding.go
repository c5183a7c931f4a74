package txt2epub

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies a supported source text encoding.
// The zero value is not valid; use one of the package constants.
type Encoding string

// Supported source encodings.
const (
	UTF8     Encoding = "utf-8"
	UTF16LE  Encoding = "utf-16le"
	UTF16BE  Encoding = "utf-16be"
	GBK      Encoding = "gbk"
	Big5     Encoding = "big5"
	ShiftJIS Encoding = "shift-jis"
	EUCKR    Encoding = "euc-kr"
)

// Encodings returns all supported encodings in display order.
func Encodings() []Encoding {
	return []Encoding{UTF8, UTF16LE, UTF16BE, GBK, Big5, ShiftJIS, EUCKR}
}

// ParseEncoding converts a user-supplied encoding name into an Encoding.
// Matching is case-insensitive and ignores surrounding whitespace.
// Returns a wrapped ErrUnsupportedEncoding for names outside the
// supported set.
func ParseEncoding(s string) (Encoding, error) {
	e := Encoding(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case UTF8, UTF16LE, UTF16BE, GBK, Big5, ShiftJIS, EUCKR:
		return e, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedEncoding)
}

const (
	// detectPrefixLimit bounds how many bytes DetectEncoding inspects.
	detectPrefixLimit = 4096

	// heuristicScanLimit bounds the double-byte heuristic scan.
	heuristicScanLimit = 1000
)

// DetectEncoding returns a best-guess encoding for the given byte prefix.
// It inspects at most the first 4096 bytes: byte order marks first, then
// a double-byte heuristic for GBK-like text. It never fails; ASCII and
// anything unrecognised fall back to UTF8.
func DetectEncoding(data []byte) Encoding {
	if len(data) > detectPrefixLimit {
		data = data[:detectPrefixLimit]
	}

	// Byte order marks take priority.
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return UTF8
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return UTF16LE
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return UTF16BE
	}

	// Heuristic scan: count ASCII bytes and GBK-style lead/trail pairs.
	// The scan stops one byte early so the trail-byte lookahead stays in
	// bounds.
	limit := len(data)
	if limit > heuristicScanLimit {
		limit = heuristicScanLimit
	}
	ascii, dbcs := 0, 0
	for i := 0; i < limit-1; {
		b := data[i]
		switch {
		case b < 0x80:
			ascii++
			i++
		case b >= 0x81 && b <= 0xFE && data[i+1] >= 0x40 && data[i+1] <= 0xFE:
			dbcs++
			i += 2
		default:
			i++
		}
	}
	if dbcs > 5 && float64(dbcs) > 0.1*float64(ascii) {
		return GBK
	}

	return UTF8
}

// newDecoder returns a fresh streaming decoder for e. Each decode pass
// must use its own decoder instance; decoders carry partial multi-byte
// state between Transform calls.
func (e Encoding) newDecoder() (*encoding.Decoder, error) {
	switch e {
	case UTF8:
		// UTF8BOM strips a leading byte order mark if present.
		return unicode.UTF8BOM.NewDecoder(), nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	case GBK:
		return simplifiedchinese.GBK.NewDecoder(), nil
	case Big5:
		return traditionalchinese.Big5.NewDecoder(), nil
	case ShiftJIS:
		return japanese.ShiftJIS.NewDecoder(), nil
	case EUCKR:
		return korean.EUCKR.NewDecoder(), nil
	}
	return nil, fmt.Errorf("%q: %w", string(e), ErrUnsupportedEncoding)
}
