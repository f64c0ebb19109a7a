package graph

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

var markupSkipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"iframe":   true,
	"svg":      true,
	"canvas":   true,
	"template": true,
}

var markupBlockTags = map[string]bool{
	"p":       true,
	"div":     true,
	"li":      true,
	"section": true,
	"article": true,
	"h1":      true,
	"h2":      true,
	"h3":      true,
	"h4":      true,
	"h5":      true,
	"h6":      true,
	"table":   true,
	"tr":      true,
	"br":      true,
	"ul":      true,
	"ol":      true,
}

// FlattenMarkup reduces an HTML fragment to its visible text, one line
// per block element. Graph descriptions handed over by a research loop
// are often scraped page fragments, and the edge scanner should see the
// cell text, not the tags. Plain text comes back unchanged.
func FlattenMarkup(raw string) string {
	if !strings.ContainsRune(raw, '<') || !strings.ContainsRune(raw, '>') {
		return raw
	}

	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	skipDepth := 0
	sawTag := false
	var text strings.Builder

	writeNL := func() {
		s := text.String()
		if len(s) > 0 && s[len(s)-1] != '\n' {
			text.WriteByte('\n')
		}
	}

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return raw
		}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			t := tokenizer.Token()
			name := strings.ToLower(t.Data)
			sawTag = true
			if markupSkipTags[name] && tt == html.StartTagToken {
				skipDepth++
			}
			if markupBlockTags[name] {
				writeNL()
			}
		case html.EndTagToken:
			t := tokenizer.Token()
			name := strings.ToLower(t.Data)
			if markupSkipTags[name] && skipDepth > 0 {
				skipDepth--
			}
			if markupBlockTags[name] {
				writeNL()
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			chunk := strings.TrimSpace(string(tokenizer.Text()))
			if chunk == "" {
				continue
			}
			s := text.String()
			if len(s) > 0 && s[len(s)-1] != '\n' {
				text.WriteByte(' ')
			}
			text.WriteString(chunk)
		}
	}
	if !sawTag {
		// Angle brackets but no actual markup, e.g. 'A -> B'.
		return raw
	}
	return strings.TrimSpace(text.String())
}
