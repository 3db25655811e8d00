// Package content 负责文章正文的渲染与摘要提取。
package content

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // 目录锚点
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			html.WithUnsafe(), // 原始 HTML 交给 bluemonday 清理
		),
	)

	ugcPolicy       = newUGCPolicy()
	stripTagsPolicy = bluemonday.StripTagsPolicy()
)

func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "pre")
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// ToHTML 把 Markdown 渲染为经过清理的安全 HTML。
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return ugcPolicy.Sanitize(buf.String()), nil
}

// StripTags 去掉所有 HTML 标签并压缩空白。
func StripTags(s string) string {
	return strings.Join(strings.Fields(stripTagsPolicy.Sanitize(s)), " ")
}

// Excerpt 从正文生成摘要：去标签后截取前 limit 个字符，被截断时追加 "..."。
func Excerpt(body string, limit int) string {
	text := StripTags(body)
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:limit]), " ") + "..."
}

// Slugify 由标题生成 slug。
func Slugify(title string) string {
	return slug.Make(title)
}
