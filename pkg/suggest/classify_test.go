package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Context
	}{
		{"inline math", `$x = \al|$`, ContextMath},
		{"inline math right after dollar", `$\fr|$`, ContextMath},
		{"inline math closing later", `sum $a + \fr| + b$ done`, ContextMath},
		{"inline math without closing dollar", `$x = \al|`, ContextNone},
		{"inline math with space after dollar", `$ \al|$`, ContextNone},
		{"escaped dollar", `\$x \al| $`, ContextNone},
		{"block math", "$$\n\\fr|\n$$", ContextMath},
		{"block math same line", "$$ \\fr| $$", ContextMath},
		{"block math without closing", "$$\n\\fr|\n", ContextNone},
		{"closed block before cursor", "$$a$$ \\al|", ContextNone},
		{"backslash outside math", `text \al|`, ContextNone},
		{"reference label", `See [text][re|`, ContextReference},
		{"reference label empty", `See [text][|]`, ContextReference},
		{"anchor", `[link](#intro|`, ContextAnchor},
		{"anchor empty", `[link](#|)`, ContextAnchor},
		{"closed anchor", `[link](#intro)|`, ContextNone},
		{"inline link is not anchor", `[link](http|`, ContextNone},
		{"plain text", `plain text|`, ContextNone},
		{"backslash wins over reference", `[a][\al|`, ContextNone},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Classify(at(t, tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextString(t *testing.T) {
	assert.Equal(t, "math", ContextMath.String())
	assert.Equal(t, "reference", ContextReference.String())
	assert.Equal(t, "anchor", ContextAnchor.String())
	assert.Equal(t, "none", ContextNone.String())
}
