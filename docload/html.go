package docload

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// extractHTML sanitizes the document and converts it to markdown-flavoured
// plain text. If conversion fails or comes back empty, it falls back to a
// plain DOM text walk.
func (p *Pipeline) extractHTML(data []byte) (string, error) {
	sanitized := p.htmlPolicy.SanitizeBytes(data)

	md, err := p.mdConverter.ConvertString(string(sanitized))
	if err == nil && strings.TrimSpace(md) != "" {
		return strings.TrimSpace(md), nil
	}
	if err != nil {
		p.logger.Debug("html conversion failed, falling back to text walk", "error", err)
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return collectHTMLText(doc), nil
}

// collectHTMLText gathers visible text from a parsed DOM, skipping
// script/style and page boilerplate. Block elements become line breaks so the
// section extractor still sees header boundaries.
func collectHTMLText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Nav, atom.Footer, atom.Header:
				return
			case atom.P, atom.Div, atom.Br, atom.Li, atom.Tr,
				atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
