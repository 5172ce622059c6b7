// Package docload extracts the plain text of an uploaded medical report file.
//
// Supported formats:
//   - .pdf:  pdfcpu cross-reference parse + content-stream text decoding
//   - .txt:  passthrough with control-character cleanup
//   - .md:   treated as plain text
//   - .html: bluemonday sanitization + markdown conversion, DOM-walk fallback
//   - .docx: archive/zip, word/document.xml
//
// The caller receives a single UTF-8 string; docload performs no
// interpretation of the medical content and keeps no state between calls.
package docload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
)

// Format identifies an upload type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatTXT  Format = "txt"
	FormatMD   Format = "md"
	FormatHTML Format = "html"
	FormatDocx Format = "docx"
)

// Document is the result of extracting a file.
type Document struct {
	Format Format `json:"format"`
	Text   string `json:"text"`
	Pages  int    `json:"pages,omitempty"` // PDF only
}

// Pipeline is the extraction engine.
type Pipeline struct {
	cfg         Config
	logger      *slog.Logger
	htmlPolicy  *bluemonday.Policy
	mdConverter *converter.Converter
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:        cfg,
		logger:     cfg.Logger,
		htmlPolicy: bluemonday.UGCPolicy(),
		mdConverter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Detect returns the format for a file name based on its extension.
func (p *Pipeline) Detect(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, nil
	case ".txt", ".text":
		return FormatTXT, nil
	case ".md", ".markdown":
		return FormatMD, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".docx":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(name))
	}
}

// Extract reads a file from disk and extracts its text.
func (p *Pipeline) Extract(ctx context.Context, path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, info.Size(), p.cfg.MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.ExtractBytes(ctx, filepath.Base(path), data)
}

// ExtractBytes extracts text from an in-memory file, using name only for
// format detection. This is the path uploads take.
func (p *Pipeline) ExtractBytes(ctx context.Context, name string, data []byte) (*Document, error) {
	if int64(len(data)) > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), p.cfg.MaxFileSize)
	}

	format, err := p.Detect(name)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("extracting document", "name", name, "format", format, "size", len(data))

	var text string
	pages := 0
	switch format {
	case FormatPDF:
		text, pages, err = extractPDF(data)
	case FormatTXT, FormatMD:
		text = extractText(data)
	case FormatHTML:
		text, err = p.extractHTML(data)
	case FormatDocx:
		text, err = extractDocx(data)
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s (%s): %w", name, format, err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("extract %s (%s): %w", name, format, ErrNoText)
	}

	return &Document{Format: format, Text: text, Pages: pages}, nil
}

// SupportedFormats returns all supported upload extensions.
func SupportedFormats() []string {
	return []string{"pdf", "txt", "md", "html", "docx"}
}
