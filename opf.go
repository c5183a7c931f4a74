package txt2epub

import (
	"fmt"
	"strings"
	"time"
)

// buildOPF renders the OEBPS/content.opf package document: Dublin Core
// metadata, a manifest listing the navigation document, the stylesheet,
// the optional cover and one item per chapter, and a spine in chapter
// order.
func (b *Book) buildOPF(now time.Time) []byte {
	var manifest, spine strings.Builder

	manifest.WriteString(`    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>` + "\n")
	manifest.WriteString(`    <item id="style" href="style.css" media-type="text/css"/>` + "\n")
	if len(b.cover) > 0 {
		fmt.Fprintf(&manifest, `    <item id="cover-image" href="%s" media-type="%s" properties="cover-image"/>`+"\n",
			b.coverName(), b.coverMime)
	}
	for i := range b.chapters {
		id := fmt.Sprintf("chapter%d", i)
		fmt.Fprintf(&manifest, `    <item id="%s" href="%s" media-type="application/xhtml+xml"/>`+"\n",
			id, chapterFilename(i))
		fmt.Fprintf(&spine, `    <itemref idref="%s"/>`+"\n", id)
	}

	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="BookId">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="BookId">%s</dc:identifier>
    <dc:title>%s</dc:title>
    <dc:creator>%s</dc:creator>
    <dc:language>%s</dc:language>
    <meta property="dcterms:modified">%s</meta>
  </metadata>
  <manifest>
%s  </manifest>
  <spine toc="ncx">
%s  </spine>
</package>
`,
		escapeXML(b.identifier),
		escapeXML(b.Title),
		escapeXML(b.Author),
		escapeXML(b.language),
		now.UTC().Format("2006-01-02T15:04:05Z"),
		manifest.String(),
		spine.String(),
	))
}
