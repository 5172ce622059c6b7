package docload

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	pipe := New(Config{})

	tests := []struct {
		name   string
		format Format
	}{
		{"report.pdf", FormatPDF},
		{"report.txt", FormatTXT},
		{"report.text", FormatTXT},
		{"report.md", FormatMD},
		{"report.markdown", FormatMD},
		{"report.html", FormatHTML},
		{"report.htm", FormatHTML},
		{"report.docx", FormatDocx},
		{"REPORT.TXT", FormatTXT},
	}
	for _, tt := range tests {
		f, err := pipe.Detect(tt.name)
		if err != nil {
			t.Errorf("Detect(%q): %v", tt.name, err)
			continue
		}
		if f != tt.format {
			t.Errorf("Detect(%q) = %q, want %q", tt.name, f, tt.format)
		}
	}

	if _, err := pipe.Detect("report.xyz"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Detect(report.xyz) = %v, want ErrUnsupported", err)
	}
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	os.WriteFile(path, []byte("Chief Complaint: chest pain\r\nPlan: rest"), 0644)

	pipe := New(Config{})
	doc, err := pipe.Extract(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Format != FormatTXT {
		t.Fatalf("format = %s, want txt", doc.Format)
	}
	if strings.Contains(doc.Text, "\r") {
		t.Errorf("CRLF not normalized: %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Chief Complaint: chest pain") {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestExtractTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	os.WriteFile(path, bytes.Repeat([]byte("x"), 64), 0644)

	pipe := New(Config{MaxFileSize: 16})
	if _, err := pipe.Extract(context.Background(), path); !errors.Is(err, ErrTooLarge) {
		t.Errorf("err = %v, want ErrTooLarge", err)
	}
}

func TestExtractBytesTooLarge(t *testing.T) {
	pipe := New(Config{MaxFileSize: 16})
	_, err := pipe.ExtractBytes(context.Background(), "big.txt", bytes.Repeat([]byte("x"), 64))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("err = %v, want ErrTooLarge", err)
	}
}

func TestExtractBytesNoText(t *testing.T) {
	pipe := New(Config{})
	_, err := pipe.ExtractBytes(context.Background(), "empty.txt", []byte("   \n\t  "))
	if !errors.Is(err, ErrNoText) {
		t.Errorf("err = %v, want ErrNoText", err)
	}
}

func TestExtractHTML(t *testing.T) {
	html := `<html><head><script>var x = 1;</script></head><body>
<h1>Chief Complaint</h1>
<p>chest pain for two days</p>
</body></html>`

	pipe := New(Config{})
	doc, err := pipe.ExtractBytes(context.Background(), "report.html", []byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.Text, "chest pain for two days") {
		t.Errorf("text = %q", doc.Text)
	}
	if strings.Contains(doc.Text, "var x") {
		t.Errorf("script content leaked: %q", doc.Text)
	}
}

func TestExtractDocx(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Chief Complaint: chest pain</w:t></w:r></w:p>
<w:p><w:r><w:t>Plan: rest and fluids</w:t></w:r></w:p>
</w:body>
</w:document>`

	fw, _ := w.Create("word/document.xml")
	fw.Write([]byte(docXML))
	w.Close()

	pipe := New(Config{})
	doc, err := pipe.ExtractBytes(context.Background(), "report.docx", buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	want := "Chief Complaint: chest pain\nPlan: rest and fluids"
	if doc.Text != want {
		t.Errorf("text = %q, want %q", doc.Text, want)
	}
}

func TestExtractDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("unrelated.txt")
	fw.Write([]byte("not a docx"))
	w.Close()

	pipe := New(Config{})
	if _, err := pipe.ExtractBytes(context.Background(), "report.docx", buf.Bytes()); err == nil {
		t.Error("expected error for archive without word/document.xml")
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 5 {
		t.Fatalf("len = %d, want 5", len(formats))
	}
	if formats[0] != "pdf" {
		t.Errorf("formats[0] = %q", formats[0])
	}
}
