package toc

import (
	"strings"
	"testing"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	text := strings.Join([]string{
		"# Title",
		"",
		"Intro paragraph.",
		"",
		"## Section *One* ##",
		"#hashtag is not a heading",
		"```go",
		"# not a heading either",
		"```",
		"Setext Two",
		"----------",
		"Setext One",
		"==========",
		"### Skipped <!-- omit in toc -->",
		"    # indented code",
		"- list item",
		"---",
		"~~~~",
		"## fenced",
		"~~~",
		"still fenced",
		"~~~~",
		"###### Deep",
	}, "\n")

	got := Build(document.New(text))

	assert.Equal(t, []Heading{
		{Text: "Title", Level: 1, Line: 0},
		{Text: "Section *One*", Level: 2, Line: 4},
		{Text: "Setext Two", Level: 2, Line: 9},
		{Text: "Setext One", Level: 1, Line: 11},
		{Text: "Deep", Level: 6, Line: 22},
	}, got)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(document.New("no headings here\njust text")))
	assert.Nil(t, Build(nil))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trim me  ", "trim-me"},
		{"What's new?", "whats-new"},
		{"Section *One*", "section-one"},
		{"Use `go test`", "use-go-test"},
		{"[Link](http://x.y) text", "link-text"},
		{"snake_case and-dash", "snake_case-and-dash"},
		{"Ünïcödé Header", "ünïcödé-header"},
		{"C++ & C#", "c--c"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
