// Package graphfile reads and writes arenas as YAML documents.
//
// Document schema:
//
//	items:
//	  - name: A
//	    weight: 10
//	    do_not_use: false
//	relations:
//	  - from: A
//	    to: B
//	    weight: 2    # optional, defaults to 1
//
// Items are numbered in document order; relations are inserted in document
// order, so equal-weight relations keep their listed order in the neighborhood.
//
// Validation combines go-playground/validator struct tags (required names,
// finite weights) with document-level checks (unique item names, relations
// referring to known items).
package graphfile
