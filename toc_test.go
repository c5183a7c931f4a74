package txt2epub

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"testing"
)

// Decoding structs for validating the generated NCX document.

type ncxDocument struct {
	XMLName xml.Name  `xml:"ncx"`
	Head    ncxHead   `xml:"head"`
	Title   ncxText   `xml:"docTitle"`
	NavMap  ncxNavMap `xml:"navMap"`
}

type ncxHead struct {
	Metas []ncxMeta `xml:"meta"`
}

type ncxMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type ncxText struct {
	Text string `xml:"text"`
}

type ncxNavMap struct {
	NavPoints []ncxNavPoint `xml:"navPoint"`
}

type ncxNavPoint struct {
	ID        string     `xml:"id,attr"`
	PlayOrder string     `xml:"playOrder,attr"`
	Label     ncxText    `xml:"navLabel"`
	Content   ncxContent `xml:"content"`
}

type ncxContent struct {
	Src string `xml:"src,attr"`
}

func parseTestNCX(t *testing.T, data []byte) *ncxDocument {
	t.Helper()
	var doc ncxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse generated NCX: %v", err)
	}
	return &doc
}

func TestBuildNCX_NavPoints(t *testing.T) {
	b := buildTestBook()
	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	_, files := unpackArchive(t, data)
	doc := parseTestNCX(t, files["OEBPS/toc.ncx"])

	chapters := b.Chapters()
	if len(doc.NavMap.NavPoints) != len(chapters) {
		t.Fatalf("NCX has %d navPoints, want %d", len(doc.NavMap.NavPoints), len(chapters))
	}
	for i, np := range doc.NavMap.NavPoints {
		if got, err := strconv.Atoi(np.PlayOrder); err != nil || got != i+1 {
			t.Errorf("navPoint[%d] playOrder = %q, want %d", i, np.PlayOrder, i+1)
		}
		if np.Label.Text != chapters[i].Title {
			t.Errorf("navPoint[%d] label = %q, want %q", i, np.Label.Text, chapters[i].Title)
		}
		wantSrc := fmt.Sprintf("chapter%d.xhtml", i)
		if np.Content.Src != wantSrc {
			t.Errorf("navPoint[%d] src = %q, want %q", i, np.Content.Src, wantSrc)
		}
	}
}

func TestBuildNCX_HeadAndTitle(t *testing.T) {
	b := buildTestBook()
	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	_, files := unpackArchive(t, data)
	doc := parseTestNCX(t, files["OEBPS/toc.ncx"])

	if doc.Title.Text != "测试书" {
		t.Errorf("docTitle = %q, want %q", doc.Title.Text, "测试书")
	}

	var uid string
	for _, m := range doc.Head.Metas {
		if m.Name == "dtb:uid" {
			uid = m.Content
		}
	}
	if uid != b.Identifier() {
		t.Errorf("dtb:uid = %q, want %q", uid, b.Identifier())
	}
}

func TestBuildNCX_EscapesTitles(t *testing.T) {
	b := NewBook("书", "")
	b.AddChapter(Chapter{Title: `第一章 <"引子"> & 其他`, Lines: []string{"正文"}})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	_, files := unpackArchive(t, data)
	doc := parseTestNCX(t, files["OEBPS/toc.ncx"])

	if got := doc.NavMap.NavPoints[0].Label.Text; got != `第一章 <"引子"> & 其他` {
		t.Errorf("label = %q, want the unescaped title back", got)
	}
}
