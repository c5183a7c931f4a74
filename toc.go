package txt2epub

import (
	"fmt"
	"strings"
)

// buildNCX renders the OEBPS/toc.ncx navigation document: one navPoint
// per chapter, in chapter order, with playOrder starting at 1.
func (b *Book) buildNCX() []byte {
	var nav strings.Builder
	for i, ch := range b.chapters {
		fmt.Fprintf(&nav, `    <navPoint id="navpoint-%d" playOrder="%d">
      <navLabel><text>%s</text></navLabel>
      <content src="%s"/>
    </navPoint>
`, i+1, i+1, escapeXML(ch.Title), chapterFilename(i))
	}

	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="%s"/>
    <meta name="dtb:depth" content="1"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle><text>%s</text></docTitle>
  <navMap>
%s  </navMap>
</ncx>
`,
		escapeXML(b.identifier),
		escapeXML(b.Title),
		nav.String(),
	))
}
