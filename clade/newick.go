// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clade

import (
	"fmt"
	"io"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// ReadNewick reads a tree in newick
// (i.e. parenthetical) format.
//
// Only the topology and the terminal names are kept;
// branch lengths, support values,
// and internal node names are ignored.
func ReadNewick(r io.Reader) (*Tree, error) {
	src, err := newick.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("invalid newick: %v", err)
	}
	root := src.Root()
	if root == nil {
		return nil, fmt.Errorf("invalid newick: empty tree")
	}

	t := &Tree{
		taxa: make(map[string]int),
	}
	if err := t.copyNode(root, nil, -1); err != nil {
		return nil, err
	}
	return t, nil
}

// CopyNode copies a gotree node and its descendants
// into the node arena of the tree.
// As gotree stores a tree as an undirected graph,
// the neighbor used to reach the node
// must be skipped while descending.
func (t *Tree) copyNode(n, prev *tree.Node, parent int) error {
	id := len(t.nodes)
	nd := &node{
		id:     id,
		parent: parent,
	}
	t.nodes = append(t.nodes, nd)
	if parent >= 0 {
		p := t.nodes[parent]
		p.children = append(p.children, id)
	}

	var desc []*tree.Node
	for _, c := range n.Neigh() {
		if c != prev {
			desc = append(desc, c)
		}
	}
	if len(desc) == 0 {
		name := n.Name()
		if name == "" {
			return fmt.Errorf("terminal %d: %w", len(t.taxa)+1, ErrNoLabel)
		}
		if _, dup := t.taxa[name]; dup {
			return fmt.Errorf("taxon %q: %w", name, ErrDupTaxon)
		}
		nd.taxon = name
		t.taxa[name] = id
		return nil
	}

	for _, c := range desc {
		if err := t.copyNode(c, n, id); err != nil {
			return err
		}
	}
	return nil
}
