// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of terminals of a tree.
package terms

import (
	"fmt"
	"os"

	"github.com/daguirre/cladesort/clade"
	"github.com/js-arias/command"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms <tree-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads a phylogenetic tree in newick format and prints the name
of its terminals, in alphabetical order, in the standard output.

The argument of the command is the name of the tree file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := clade.ReadNewick(f)
	if err != nil {
		return fmt.Errorf("on tree file %q: %v", args[0], err)
	}

	terms := t.Terms()
	slices.Sort(terms)
	for _, term := range terms {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}
