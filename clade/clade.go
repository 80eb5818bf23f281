// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clade implements the resolution
// of the clades of interest
// defined by a set of reference terminals
// on a phylogenetic tree.
//
// For each reference terminal,
// its clade is the deepest ancestor of the terminal
// whose descendants include no other reference.
package clade

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotInTree is returned when a reference terminal
// is not a terminal of the tree.
var ErrNotInTree = errors.New("reference terminal not in tree")

// ErrDupTaxon is returned when two or more terminals
// of a tree have the same name.
var ErrDupTaxon = errors.New("repeated taxon name")

// ErrNoLabel is returned when a terminal of a tree
// has no name.
var ErrNoLabel = errors.New("terminal without name")

// A Tree is a rooted phylogenetic tree,
// read-only after construction.
//
// Nodes are stored by ID,
// with the root always at ID 0.
type Tree struct {
	nodes []*node
	taxa  map[string]int
}

// A node is a node of a tree.
type node struct {
	id       int
	parent   int
	children []int
	taxon    string
}

// Terms returns the name of the terminals of the tree,
// in tree order.
func (t *Tree) Terms() []string {
	terms := make([]string, 0, len(t.taxa))
	for _, n := range t.nodes {
		if n.taxon != "" {
			terms = append(terms, n.taxon)
		}
	}
	return terms
}

// HasTerm reports whether a name is a terminal of the tree.
func (t *Tree) HasTerm(name string) bool {
	_, ok := t.taxa[name]
	return ok
}

// Clades returns the extent
// (the sorted set of terminal names)
// of the clade of interest of each reference terminal:
// the deepest ancestor of the reference,
// the terminal itself excluded,
// whose descendants include no other reference.
// If even the immediate ancestor of the reference
// contains another reference,
// the extent is the reference terminal alone.
func (t *Tree) Clades(refs []string) (map[string][]string, error) {
	return t.resolve(refs, false)
}

// LargestClades is like Clades,
// but returns the extent of the highest ancestor
// whose descendants include no other reference.
func (t *Tree) LargestClades(refs []string) (map[string][]string, error) {
	return t.resolve(refs, true)
}

func (t *Tree) resolve(refs []string, largest bool) (map[string][]string, error) {
	isRef := make(map[string]bool, len(refs))
	for _, r := range refs {
		if _, ok := t.taxa[r]; !ok {
			return nil, fmt.Errorf("reference %q: %w", r, ErrNotInTree)
		}
		isRef[r] = true
	}

	count := make([]int, len(t.nodes))
	t.countRefs(0, isRef, count)

	ext := make(map[string][]string, len(isRef))
	for r := range isRef {
		leaf := t.taxa[r]
		best := leaf
		if len(isRef) == 1 {
			// a lone reference has nothing to be isolated from:
			// its clade is the whole tree
			best = 0
		} else {
			for p := t.nodes[leaf].parent; p >= 0; p = t.nodes[p].parent {
				if count[p] != 1 {
					break
				}
				best = p
				if !largest {
					break
				}
			}
		}
		ext[r] = t.extent(best)
	}
	return ext, nil
}

// CountRefs stores in count the number of reference terminals
// found among the descendants of each node,
// the node included.
func (t *Tree) countRefs(n int, isRef map[string]bool, count []int) int {
	nd := t.nodes[n]
	c := 0
	if isRef[nd.taxon] {
		c = 1
	}
	for _, d := range nd.children {
		c += t.countRefs(d, isRef, count)
	}
	count[n] = c
	return c
}

// Extent returns the sorted terminal names
// of the clade rooted at a node.
func (t *Tree) extent(n int) []string {
	var terms []string
	stack := []int{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := t.nodes[x]
		if len(nd.children) == 0 {
			terms = append(terms, nd.taxon)
			continue
		}
		stack = append(stack, nd.children...)
	}
	slices.Sort(terms)
	return terms
}
