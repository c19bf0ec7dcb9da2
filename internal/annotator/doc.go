// Package annotator derives structured facets from raw text.
//
// Annotation is a pipeline of named stages run over a shared Annotation.
// Before any stage runs, the text is lowercased and matched against the
// vocabulary's trigger groups; stages then read those matches to build
// keywords, metaphors, structure, strategy, summary and the expansion.
//
// Annotation is deterministic and never fails. It reads only the input text
// and the vocabulary it was built with.
package annotator
