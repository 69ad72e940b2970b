package harvest

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// WordExtractor pulls candidate seed words out of page content
type WordExtractor struct {
	minLen   int
	maxWords int
}

// NewWordExtractor creates an extractor. Words shorter than minLen runes
// are dropped; maxWords caps the yield per page (0 means no cap).
func NewWordExtractor(minLen, maxWords int) *WordExtractor {
	if minLen < 1 {
		minLen = 1
	}
	return &WordExtractor{
		minLen:   minLen,
		maxWords: maxWords,
	}
}

// Extract returns the unique words of an HTML page in document order.
// Visible text, the title and meta keywords/description all contribute;
// script, style, noscript and iframe content never does. Content that
// does not parse as HTML is treated as plain text.
func (e *WordExtractor) Extract(content string) []string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return e.words(content)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "meta":
				if metaContributes(n) {
					buf.WriteString(attrVal(n, "content"))
					buf.WriteString(" ")
				}
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return e.words(buf.String())
}

// words splits text into letter runs, keeping the first occurrence of
// each word in order.
func (e *WordExtractor) words(text string) []string {
	seen := make(map[string]struct{})
	var out []string

	var current []rune
	flush := func() {
		if len(current) < e.minLen {
			current = current[:0]
			return
		}
		word := string(current)
		current = current[:0]
		if _, dup := seen[word]; dup {
			return
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			current = append(current, r)
			continue
		}
		flush()
	}
	flush()

	if e.maxWords > 0 && len(out) > e.maxWords {
		out = out[:e.maxWords]
	}
	return out
}

func metaContributes(n *html.Node) bool {
	name := strings.ToLower(attrVal(n, "name"))
	return name == "keywords" || name == "description"
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
