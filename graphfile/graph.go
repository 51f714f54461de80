// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"

	"github.com/katalvlaran/cellauto/cell"
	"github.com/katalvlaran/cellauto/neighborhood"
)

// Graph is a document turned into an arena: cell i is named Names[i].
type Graph struct {
	Names        []string
	Cells        []cell.AutomatonCell
	Neighborhood *neighborhood.Weighted
}

// Build validates the document and creates its arena and neighborhood.
func (d *Document) Build() (*Graph, error) {
	if err := docValidate.Struct(d); err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrInvalidDocument, err)
	}
	idx, err := d.index()
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	g := &Graph{
		Names:        make([]string, len(d.Items)),
		Cells:        make([]cell.AutomatonCell, len(d.Items)),
		Neighborhood: neighborhood.NewWithCapacity(len(d.Items)),
	}
	for i, it := range d.Items {
		g.Names[i] = it.Name
		g.Cells[i] = cell.New(it.Weight)
		if it.DoNotUse {
			g.Cells[i].SetDoNotUse()
		}
	}
	for _, r := range d.Relations {
		if err := g.Neighborhood.Insert(idx[r.From], idx[r.To], r.weight()); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// PathNames maps a path of item indices to item names.
func (g *Graph) PathNames(path []int) []string {
	out := make([]string, len(path))
	for i, it := range path {
		out[i] = g.Names[it]
	}

	return out
}

// FromArena renders cells and nbh as a document. Items are named by names when
// given (one per cell), otherwise "c0", "c1", ... Relations are listed in
// Relations() order, so building the document reproduces the neighborhood.
func FromArena(cells []cell.AutomatonCell, nbh *neighborhood.Weighted, names ...string) (*Document, error) {
	if nbh == nil {
		return nil, fmt.Errorf("FromArena: nil neighborhood: %w", ErrInvalidDocument)
	}
	if top := nbh.MaxItem(); top >= len(cells) {
		return nil, fmt.Errorf("FromArena: relation references item %d, have %d cells: %w",
			top, len(cells), ErrUnknownItem)
	}
	if len(names) != 0 && len(names) != len(cells) {
		return nil, fmt.Errorf("FromArena: %d names for %d cells: %w", len(names), len(cells), ErrInvalidDocument)
	}

	name := func(i int) string {
		if len(names) != 0 {
			return names[i]
		}
		return fmt.Sprintf("c%d", i)
	}

	doc := &Document{Items: make([]Item, len(cells))}
	for i := range cells {
		doc.Items[i] = Item{Name: name(i), Weight: cells[i].Weight, DoNotUse: cells[i].HasDoNotUse()}
	}
	for _, r := range nbh.Relations() {
		w := r.Weight
		doc.Relations = append(doc.Relations, Relation{From: name(r.From), To: name(r.To), Weight: &w})
	}

	return doc, nil
}
