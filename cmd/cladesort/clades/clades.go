// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clades implements a command to print
// the clades of interest defined by a set of reference sequences,
// without reading any sequence data.
package clades

import (
	"fmt"
	"os"

	"github.com/daguirre/cladesort/clade"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "clades [--max] <tree-file> <ref-file>",
	Short: "print the clade of each reference sequence",
	Long: `
Command clades reads a phylogenetic tree and a list of reference sequence
names, and prints the terminals of the clade of interest of each reference in
the standard output, as tab-delimited pairs of the reference name and the
terminal name.

The clade of interest of a reference is the deepest ancestor of the reference
terminal whose descendants include no other reference. If the flag --max is
defined, the highest such ancestor will be used instead.

The first argument of the command is the name of a tree file in newick
format. The second argument is the name of a text file with the reference
sequence names, one name per line.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var maxFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&maxFlag, "max", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting tree and reference files")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}
	refs, err := readRefs(args[1])
	if err != nil {
		return err
	}

	resolve := t.Clades
	if maxFlag {
		resolve = t.LargestClades
	}
	ext, err := resolve(refs)
	if err != nil {
		return fmt.Errorf("on tree file %q: %v", args[0], err)
	}

	for _, r := range refs {
		for _, term := range ext[r] {
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", r, term)
		}
	}
	return nil
}

func readTree(name string) (*clade.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := clade.ReadNewick(f)
	if err != nil {
		return nil, fmt.Errorf("on tree file %q: %v", name, err)
	}
	return t, nil
}

func readRefs(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	refs, err := clade.ReadRefs(f)
	if err != nil {
		return nil, fmt.Errorf("on reference file %q: %v", name, err)
	}
	return refs, nil
}
