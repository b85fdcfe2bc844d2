// Package ioformat implements the two external collaborators spec.md §1
// calls out of scope for the core: instance-file parsing and
// solution-file writing (spec.md §6). Both are thin, validating
// line-readers grounded on the original source's parser.cpp and
// verificar_instancias.cpp upfront-validation order, re-expressed with
// Go error values instead of exceptions.
package ioformat
