package txt2epub

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// styleCSS is the fixed stylesheet shipped with every book.
const styleCSS = `body {
  font-family: serif;
  line-height: 1.6;
  margin: 1em;
}
h1 {
  text-align: center;
  font-size: 1.4em;
  margin: 1em 0;
}
p {
  text-indent: 2em;
  margin: 0.3em 0;
}
`

// escapeXML escapes XML special characters (& < > " ') in s. Every piece
// of user-supplied text must pass through here before being embedded in
// a generated document; skipping it corrupts the archive.
func escapeXML(s string) string {
	var buf bytes.Buffer
	// xml.EscapeText never fails on a bytes.Buffer.
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// chapterFilename returns the OPF-relative name of chapter i (0-based).
func chapterFilename(i int) string {
	return fmt.Sprintf("chapter%d.xhtml", i)
}

// chapterXHTML renders one chapter as a minimal XHTML content document:
// a heading with the chapter title and one paragraph per content line.
func chapterXHTML(ch Chapter) []byte {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html xmlns=\"http://www.w3.org/1999/xhtml\">\n<head>\n")
	fmt.Fprintf(&sb, "  <title>%s</title>\n", escapeXML(ch.Title))
	sb.WriteString("  <link rel=\"stylesheet\" type=\"text/css\" href=\"style.css\"/>\n")
	sb.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&sb, "  <h1>%s</h1>\n", escapeXML(ch.Title))
	for _, line := range ch.Lines {
		fmt.Fprintf(&sb, "  <p>%s</p>\n", escapeXML(line))
	}
	sb.WriteString("</body>\n</html>\n")
	return []byte(sb.String())
}
