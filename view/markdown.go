package view

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizerStrict = bluemonday.StrictPolicy()
	sanitizerUGC    = bluemonday.UGCPolicy()
)

func mdToHTML(md string) []byte {
	// a parser can't be reused between documents
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	return markdown.Render(doc, renderer)
}

// SafeMarkdown renders post content as markdown and strips anything the UGC
// policy does not allow, so the result can be emitted unescaped.
func SafeMarkdown(content string) template.HTML {
	return template.HTML(sanitizerUGC.SanitizeBytes(mdToHTML(content)))
}

// Plain drops all markup from s. The strict policy escapes what is left, so
// the result is already safe HTML text.
func Plain(s string) template.HTML {
	return template.HTML(sanitizerStrict.Sanitize(s))
}
