// Command txt2epub converts plain-text novels into EPUB e-books.
// Chapters are detected with a user-supplied regular expression; the
// source encoding is sniffed automatically and can be overridden.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/schollz/progressbar/v3"

	"github.com/simp-lee/txt2epub"
)

const version = "0.1.0"

// maxSourceSize is the admission limit for input files.
const maxSourceSize = 50 * 1024 * 1024

// previewLines is the default cap for preview passes.
const previewLines = 200

// CLI defines the command-line interface for txt2epub.
var CLI struct {
	Config string `help:"Path to YAML config file." type:"path"`

	Convert ConvertCmd `cmd:"" help:"Convert a text file to an EPUB e-book"`
	Preview PreviewCmd `cmd:"" help:"Preview chapter detection on the first lines of a file"`
	Detect  DetectCmd  `cmd:"" help:"Detect the character encoding of a file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a text file into an EPUB archive.
type ConvertCmd struct {
	Path       string `arg:"" help:"Text file to convert." type:"existingfile"`
	Title      string `short:"t" help:"Book title (defaults to the file name)."`
	Author     string `short:"a" help:"Book author (defaults to the config author)."`
	Pattern    string `short:"p" help:"Chapter boundary regular expression."`
	Preset     string `help:"Named pattern preset from the config file."`
	Encoding   string `short:"e" help:"Source encoding (overrides detection)."`
	Output     string `short:"o" help:"Output path (defaults to {title}.epub)." type:"path"`
	Cover      string `help:"Cover image file (JPEG or PNG)." type:"existingfile"`
	NoProgress bool   `help:"Disable the progress bar."`
}

func (c *ConvertCmd) Run(cfg *Config) error {
	data, err := readSource(c.Path)
	if err != nil {
		return err
	}

	enc, err := resolveEncoding(c.Encoding, data)
	if err != nil {
		return err
	}

	pattern, err := resolvePattern(c.Pattern, c.Preset, cfg)
	if err != nil {
		return err
	}

	title := c.Title
	if title == "" {
		title = defaultTitle(c.Path)
	}
	author := c.Author
	if author == "" {
		author = cfg.Author
	}

	src := newSourceReader(data, c.NoProgress)
	book, err := txt2epub.Convert(src.r, enc, pattern, title, author)
	src.finish()
	if err != nil {
		return err
	}

	if c.Cover != "" {
		coverData, mediaType, err := readCover(c.Cover)
		if err != nil {
			return err
		}
		book.SetCover(coverData, mediaType)
	}

	out := c.Output
	if out == "" {
		out = title + ".epub"
	}
	if err := writeBookFile(book, out); err != nil {
		return err
	}

	fmt.Printf("%s: %d chapters, encoding %s -> %s\n", filepath.Base(c.Path), len(book.Chapters()), enc, out)
	return nil
}

// PreviewCmd runs a bounded segmentation pass and prints the detected
// chapters. It never shares decoder state with a conversion: each
// invocation decodes the source afresh.
type PreviewCmd struct {
	Path     string `arg:"" help:"Text file to preview." type:"existingfile"`
	Pattern  string `short:"p" help:"Chapter boundary regular expression."`
	Preset   string `help:"Named pattern preset from the config file."`
	Encoding string `short:"e" help:"Source encoding (overrides detection)."`
	Lines    int    `short:"n" default:"200" help:"Number of non-blank lines to examine."`
}

func (c *PreviewCmd) Run(cfg *Config) error {
	data, err := readSource(c.Path)
	if err != nil {
		return err
	}

	enc, err := resolveEncoding(c.Encoding, data)
	if err != nil {
		return err
	}

	pattern, err := resolvePattern(c.Pattern, c.Preset, cfg)
	if err != nil {
		return err
	}

	lr, err := txt2epub.NewLineReader(bytes.NewReader(data), enc)
	if err != nil {
		return err
	}
	limit := c.Lines
	if limit <= 0 {
		limit = previewLines
	}
	chapters, err := txt2epub.SegmentLimit(lr, pattern, limit)
	if err != nil {
		return err
	}

	fmt.Printf("encoding: %s\n", enc)
	if len(chapters) == 0 {
		fmt.Println("no chapters detected in the previewed lines")
		return nil
	}
	for i, ch := range chapters {
		fmt.Printf("%3d. %s (%d lines)\n", i+1, ch.Title, len(ch.Lines))
	}
	return nil
}

// DetectCmd prints the detected encoding of a file.
type DetectCmd struct {
	Path string `arg:"" help:"Text file to inspect." type:"existingfile"`
}

func (c *DetectCmd) Run(*Config) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	prefix := make([]byte, 4096)
	n, err := io.ReadFull(f, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("read %s: %w", c.Path, err)
	}
	fmt.Println(txt2epub.DetectEncoding(prefix[:n]))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(*Config) error {
	fmt.Printf("txt2epub %s\n", version)
	return nil
}

// readSource loads the input file, enforcing the admission size limit.
func readSource(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() >= maxSourceSize {
		return nil, fmt.Errorf("%s: file is %d bytes; the limit is %d", path, info.Size(), maxSourceSize)
	}
	return os.ReadFile(path)
}

// resolveEncoding returns the encoding to decode with: the user's
// override when given, otherwise the detector's guess.
func resolveEncoding(override string, data []byte) (txt2epub.Encoding, error) {
	if override != "" {
		return txt2epub.ParseEncoding(override)
	}
	return txt2epub.DetectEncoding(data), nil
}

// resolvePattern compiles the boundary pattern from the --pattern flag
// or a named config preset. An empty pattern returns nil: no line
// matches and everything lands in the preface chapter.
func resolvePattern(pattern, preset string, cfg *Config) (*regexp.Regexp, error) {
	if pattern == "" && preset != "" {
		p, ok := cfg.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown pattern preset %q", preset)
		}
		pattern = p
	}
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid chapter pattern: %w", err)
	}
	return re, nil
}

// defaultTitle derives a book title from the input file name.
func defaultTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readCover loads a cover image and derives its media type from the
// file extension.
func readCover(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	mediaType := "image/jpeg"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		mediaType = "image/png"
	}
	return data, mediaType, nil
}

// sourceReader pairs the conversion input reader with an optional
// progress bar advancing as bytes are consumed.
type sourceReader struct {
	r   io.Reader
	bar *progressbar.ProgressBar
}

func newSourceReader(data []byte, noProgress bool) *sourceReader {
	sr := &sourceReader{r: bytes.NewReader(data)}
	if !noProgress {
		sr.bar = progressbar.NewOptions64(int64(len(data)),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		sr.r = io.TeeReader(sr.r, sr.bar)
	}
	return sr
}

// finish completes the progress bar once the conversion pass is done.
func (sr *sourceReader) finish() {
	if sr.bar != nil {
		_ = sr.bar.Finish()
	}
}

// writeBookFile renders the book into a temporary file and renames it
// into place, so a failed generation never leaves partial output.
func writeBookFile(book *txt2epub.Book, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".txt2epub-*")
	if err != nil {
		return err
	}
	if err := book.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	// CreateTemp uses 0600; the finished book is a normal artifact.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("txt2epub"),
		kong.Description("Convert plain-text novels into EPUB e-books."),
		kong.UsageOnError(),
	)

	cfg, err := loadConfig(CLI.Config)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(cfg))
}
