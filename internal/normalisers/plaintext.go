package normalisers

// PlainText passes content through unchanged. It is the fallback for
// unknown extensions.
type PlainText struct{}

func (PlainText) Name() string { return "plaintext" }

func (PlainText) Extensions() []string { return []string{".txt", ".text", ".log"} }

func (PlainText) Normalise(content string) string { return content }
