// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// CladeSort is a tool to split the sequences of a FASTA file
// into per-clade sequence files,
// using a phylogenetic tree
// and a set of reference sequences
// to define the clades of interest.
package main

import (
	"github.com/daguirre/cladesort/cmd/cladesort/clades"
	"github.com/daguirre/cladesort/cmd/cladesort/split"
	"github.com/daguirre/cladesort/cmd/cladesort/terms"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "cladesort <command> [<argument>...]",
	Short: "a tool to split sequences by clade",
}

func init() {
	app.Add(clades.Command)
	app.Add(split.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
