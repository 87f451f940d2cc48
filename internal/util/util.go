// Package util holds small text and money helpers shared by the usecases.
package util

import (
	"strings"

	"golang.org/x/net/html"
)

// skippedElements hold no readable text.
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
	"head":     {},
}

// blockElements start a new line of text.
var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "tr": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "pre": {}, "section": {}, "article": {},
}

// PlainText extracts the readable text of an HTML fragment. Entities are decoded,
// whitespace inside a line is collapsed and empty lines are dropped.
func PlainText(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var (
		lines   []string
		current strings.Builder
		skip    int
	)
	flush := func() {
		if line := strings.Join(strings.Fields(current.String()), " "); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			flush()

			return strings.Join(lines, "\n")

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := skippedElements[string(name)]; ok && tokenType == html.StartTagToken {
				skip++
			}
			if _, ok := blockElements[string(name)]; ok {
				flush()
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := skippedElements[string(name)]; ok && skip > 0 {
				skip--
			}
			if _, ok := blockElements[string(name)]; ok {
				flush()
			}

		case html.TextToken:
			if skip == 0 {
				current.Write(tokenizer.Text())
			}
		}
	}
}

// ToMinorUnits converts a major-unit price to minor units, truncating fractions of a cent.
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

// FromMinorUnits converts minor units back to a major-unit amount.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
