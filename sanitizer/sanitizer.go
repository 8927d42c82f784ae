// Package sanitizer converts author-written markdown into HTML that is safe
// to render directly, and derives plain-text excerpts from it. Conversion
// uses goldmark; the result always passes through a bluemonday allow-list
// policy, so no caller can obtain unsanitized markup from this package.
package sanitizer

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// MaxContentLength is the hard cap on raw markdown accepted for an article.
const MaxContentLength = 100000

// DefaultExcerptLength is the excerpt truncation used when listing articles.
const DefaultExcerptLength = 200

var (
	md     goldmark.Markdown
	policy *bluemonday.Policy
)

func init() {
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			// Raw HTML passes through so the bluemonday policy below is the
			// single authority on what survives. Without this, goldmark
			// escapes embedded HTML and articles render the markup as text.
			gmhtml.WithUnsafe(),
		),
	)

	policy = bluemonday.NewPolicy()
	policy.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"em", "strong", "i", "b", "u", "s", "del",
		"ul", "ol", "li",
		"blockquote", "code", "pre",
		"div", "span",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	policy.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	policy.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	policy.AllowURLSchemes("http", "https", "mailto")
	policy.AllowRelativeURLs(true)
}

// MarkdownToHTML renders GitHub-flavored markdown (tables, hard line breaks)
// and sanitizes the result. It never returns unsanitized markup: if the
// parser errors, the raw input is sanitized as-is instead.
func MarkdownToHTML(markdown string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return SanitizeHTML(markdown)
	}
	return SanitizeHTML(buf.String())
}

// SanitizeHTML filters HTML down to the fixed tag/attribute allow-list.
// Disallowed tags are dropped but their text content is kept, except for
// script-like containers whose content is never user-visible text.
// Idempotent: sanitizing sanitized output is a no-op.
func SanitizeHTML(html string) string {
	return policy.Sanitize(html)
}

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the small set of entities goldmark and the policy
// actually emit. Order matters: &amp; last so double-encoded input is not
// decoded twice.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// HTMLToPlainText strips all markup, decodes common entities, collapses
// whitespace runs and trims. When maxLength > 0 and the text is longer, it
// is cut at maxLength runes with a trailing ellipsis marker.
func HTMLToPlainText(html string, maxLength int) string {
	text := tagPattern.ReplaceAllString(html, " ")
	text = entityReplacer.Replace(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if maxLength > 0 {
		runes := []rune(text)
		if len(runes) > maxLength {
			text = strings.TrimRight(string(runes[:maxLength]), " ") + "..."
		}
	}
	return text
}

// StripHTML removes tags without entity decoding or collapsing. Fallback
// text extractor for places that only need markup gone.
func StripHTML(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

// GenerateExcerpt renders markdown and reduces it to a plain-text summary.
func GenerateExcerpt(markdown string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	return HTMLToPlainText(MarkdownToHTML(markdown), maxLength)
}

// ValidationResult reports whether content is acceptable and, if not, the
// reasons an author can act on.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Pre-sanitization rejection patterns. The sanitizer would strip all of
// these anyway; rejecting up front tells the author their content carries
// active markup instead of silently dropping it.
var dangerousPatterns = []struct {
	re     *regexp.Regexp
	reason string
}{
	{regexp.MustCompile(`(?i)<script`), "script tags are not allowed"},
	{regexp.MustCompile(`(?i)javascript:`), "javascript: URIs are not allowed"},
	{regexp.MustCompile(`(?i)\son\w+\s*=`), "inline event handlers are not allowed"},
	{regexp.MustCompile(`(?i)<iframe`), "iframe tags are not allowed"},
	{regexp.MustCompile(`(?i)<object`), "object tags are not allowed"},
	{regexp.MustCompile(`(?i)<embed`), "embed tags are not allowed"},
}

// ValidateContent checks raw markdown before it enters the pipeline:
// non-empty, within the length cap, and free of actively dangerous markup.
// This is defense in depth in front of SanitizeHTML, not a replacement.
func ValidateContent(content string) ValidationResult {
	result := ValidationResult{IsValid: true}

	if strings.TrimSpace(content) == "" {
		result.IsValid = false
		result.Errors = append(result.Errors, "content must not be empty")
		return result
	}

	// The cap is in characters, so multi-byte text is measured in runes.
	if utf8.RuneCountInString(content) > MaxContentLength {
		result.IsValid = false
		result.Errors = append(result.Errors, "content exceeds the maximum length of 100000 characters")
	}

	for _, p := range dangerousPatterns {
		if p.re.MatchString(content) {
			result.IsValid = false
			result.Errors = append(result.Errors, p.reason)
		}
	}

	return result
}
