package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_For(t *testing.T) {
	r := Default()

	tests := []struct {
		path string
		want string
	}{
		{"notes.md", "markdown"},
		{"NOTES.MARKDOWN", "markdown"},
		{"page.html", "html"},
		{"page.htm", "html"},
		{"journal.txt", "plaintext"},
		{"transcript", "plaintext"},
		{"data.csv", "plaintext"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, r.For(tt.path).Name())
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(PlainText{})
	r.Register(stubNormaliser{})

	assert.Equal(t, "stub", r.For("a.txt").Name())
	assert.Equal(t, "STUB", r.Normalise("a.txt", []byte("stub")))
	assert.Contains(t, r.Extensions(), ".log")
}

type stubNormaliser struct{}

func (stubNormaliser) Name() string            { return "stub" }
func (stubNormaliser) Extensions() []string    { return []string{".TXT"} }
func (stubNormaliser) Normalise(string) string { return "STUB" }

func TestPlainText_Passthrough(t *testing.T) {
	in := "  I feel dirty\n\nall the time  "
	assert.Equal(t, in, PlainText{}.Normalise(in))
}

func TestMarkdown_Normalise(t *testing.T) {
	in := "# Tuesday\n\n" +
		"I **washed** everything and it still felt _dirty_.\n\n" +
		"> the loop again\n\n" +
		"- called a [friend](https://example.com)\n" +
		"1. took a walk\n\n" +
		"---\n\n" +
		"```\ncode block\n```\n" +
		"![img](pic.png) used `soap`"

	got := Markdown{}.Normalise(in)

	assert.Contains(t, got, "Tuesday")
	assert.Contains(t, got, "I washed everything and it still felt dirty.")
	assert.Contains(t, got, "the loop again")
	assert.Contains(t, got, "called a friend")
	assert.Contains(t, got, "took a walk")
	assert.Contains(t, got, "used soap")
	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "code block")
	assert.NotContains(t, got, "https://")
	assert.NotContains(t, got, "---")
}

func TestHTML_Normalise(t *testing.T) {
	in := `<html><head><title>x</title><style>p{}</style></head>
<body><!-- note --><h1>Entry</h1><p>Felt&nbsp;clean &amp; calm</p>
<script>alert(1)</script><div>after   the<br/>wash</div></body></html>`

	got := HTML{}.Normalise(in)

	assert.Equal(t, "Entry\nFelt clean & calm\nafter the\nwash", got)
}
