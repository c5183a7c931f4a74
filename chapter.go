package txt2epub

import (
	"io"
	"regexp"
	"strings"
)

// prefaceTitle names the implicit chapter holding any text that appears
// before the first boundary match.
const prefaceTitle = "序言"

// Chapter is one segmented chapter: a title and its body lines.
// Lines are stored trimmed and never blank.
type Chapter struct {
	Title string
	Lines []string
}

// LineSource is a forward-only supplier of text lines. Next returns
// io.EOF after the last line. LineReader implements LineSource.
type LineSource interface {
	Next() (string, error)
}

// Segment consumes src in a single pass and partitions its lines into
// chapters. A line containing a match of pattern starts a new chapter
// titled with that line, trimmed. Lines before the first match go into
// an implicit preface chapter. Chapters that end up with no content
// lines are discarded, so the result may be empty; callers decide
// whether that is an error (see ErrNoChapters).
//
// A nil pattern matches nothing: every line lands in the preface.
func Segment(src LineSource, pattern *regexp.Regexp) ([]Chapter, error) {
	return segment(src, pattern, -1)
}

// SegmentLimit is Segment with a cap: it stops pulling lines once
// maxLines non-blank lines have been consumed. Used for bounded preview
// passes; the rest of the source is simply left unread.
func SegmentLimit(src LineSource, pattern *regexp.Regexp, maxLines int) ([]Chapter, error) {
	return segment(src, pattern, maxLines)
}

func segment(src LineSource, pattern *regexp.Regexp, maxLines int) ([]Chapter, error) {
	var (
		chapters []Chapter
		open     *Chapter
		consumed int
	)
	for {
		if maxLines >= 0 && consumed >= maxLines {
			break
		}
		line, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if pattern != nil && pattern.MatchString(line) {
			// An open chapter with no content is overwritten, not kept.
			if open != nil && len(open.Lines) > 0 {
				chapters = append(chapters, *open)
			}
			open = &Chapter{Title: strings.TrimSpace(line)}
			consumed++
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if open == nil {
			open = &Chapter{Title: prefaceTitle}
		}
		open.Lines = append(open.Lines, trimmed)
		consumed++
	}
	if open != nil && len(open.Lines) > 0 {
		chapters = append(chapters, *open)
	}
	return chapters, nil
}
