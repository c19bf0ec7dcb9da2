// Package normalisers turns file contents into the plain text the annotator
// reads. Each normaliser handles a set of file extensions; anything
// unrecognised passes through unchanged.
//
// The import and watch commands run files through Default before ingesting.
package normalisers
