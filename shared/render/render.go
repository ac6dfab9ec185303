// Package render turns instructor-written markdown (course descriptions,
// lesson text) into sanitized HTML or terminal-friendly plain text.
package render

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmark_html "github.com/yuin/goldmark/renderer/html"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	blockTag   = regexp.MustCompile(`(?i)<(/?(?:p|h[1-6]|li|ul|ol|tr|td|th|table|thead|tbody|blockquote|pre|div|br|hr))\b`)
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strip  *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithRendererOptions(goldmark_html.WithUnsafe()),
		goldmark.WithExtensions(extension.Strikethrough, extension.Table, extension.Linkify),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &TextProcessor{md: md, policy: policy, strip: bluemonday.StrictPolicy()}
}

// HTML renders markdown and sanitizes the result. Raw HTML in the source is
// passed to goldmark and then filtered, so harmless tags survive.
func (tp *TextProcessor) HTML(text string) string {
	rendered, err := tp.renderText(text)
	if err != nil {
		return tp.policy.Sanitize(html.EscapeString(text))
	}
	return tp.policy.Sanitize(rendered)
}

// Plain renders markdown, drops every tag and collapses whitespace. A positive
// limit truncates to that many runes, ending with an ellipsis.
func (tp *TextProcessor) Plain(text string, limit int) string {
	rendered, err := tp.renderText(text)
	if err != nil {
		rendered = text
	}
	// Block boundaries would otherwise glue words together once tags are gone.
	rendered = blockTag.ReplaceAllString(rendered, " <$1")
	plain := html.UnescapeString(tp.strip.Sanitize(rendered))
	plain = strings.TrimSpace(whitespace.ReplaceAllString(plain, " "))

	if limit > 0 && utf8.RuneCountInString(plain) > limit {
		runes := []rune(plain)
		plain = strings.TrimSpace(string(runes[:limit-1])) + "…"
	}
	return plain
}

func (tp *TextProcessor) renderText(text string) (string, error) {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return text, err
	}
	return strings.TrimSpace(buf.String()), nil
}
