package txt2epub

// Well-known archive paths. The container descriptor location and the
// mimetype entry name are fixed by the EPUB Open Container Format; the
// OEBPS layout is this package's convention.
const (
	mimetypePath  = "mimetype"
	containerPath = "META-INF/container.xml"
	contentDir    = "OEBPS"
	opfPath       = "OEBPS/content.opf"
	ncxPath       = "OEBPS/toc.ncx"
	stylePath     = "OEBPS/style.css"
)

// epubMimetype is the required content of the mimetype entry.
const epubMimetype = "application/epub+zip"

// containerDocument is the fixed META-INF/container.xml payload. Readers
// open it to locate the package document.
const containerDocument = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`
