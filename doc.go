// Package cellauto is a weighted cellular automaton for longest-path search
// over directed, weighted neighborhoods that may contain cycles.
//
// What is in the box:
//
//	• cell/         — AutomatonCell: state, weight and the DoNotUse / Assigned / Cycle / Start / Taken flags
//	• neighborhood/ — Weighted: many-to-many relations between item indices, sorted by weight
//	• automaton/    — the automaton itself: memoized evaluation, cycle failure, start selection
//	• follower/     — path read-out after a run
//	• multipass/    — repeated runs extracting disjoint best paths
//	• builder/      — deterministic fixtures (chain, ring, random DAG, random graph)
//	• graphfile/    — YAML graph documents: load, validate, build, render
//	• cmd/cellauto  — command line: run a graph file, generate fixtures
//
// Items live in a caller-owned []cell.AutomatonCell and are addressed by index;
// the neighborhood only stores (from, to, weight) triples over those indices.
//
// Quick example:
//
//	A(10) ──1──► B(1) ──1──► C(1)
//
//	cells := cell.FromWeights(10, 1, 1)
//	nbh := neighborhood.New()
//	_ = nbh.Connect(0, 1)
//	_ = nbh.Connect(1, 2)
//	res, _ := automaton.Apply(cells, nbh) // res.Start == 0, res.State == 14
//	path, _ := follower.Follow(cells, nbh, res.Start) // [0 1 2]
//
//	go get github.com/katalvlaran/cellauto
package cellauto
