// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package split implements a command to split a FASTA file
// into per-clade sequence files.
package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/daguirre/cladesort/clade"
	"github.com/daguirre/cladesort/seqs"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `split [--max]
	<tree-file> <ref-file> <fasta-file> <out-dir>`,
	Short: "split a FASTA file into per-clade sequence files",
	Long: `
Command split reads a phylogenetic tree, a list of reference sequence names,
and a FASTA file, and writes one FASTA file per reference sequence, each one
with the sequences of the clade of interest of that reference.

The clade of interest of a reference is the deepest ancestor of the reference
terminal whose descendants include no other reference. If the flag --max is
defined, the highest such ancestor will be used instead, so each clade will be
as inclusive as possible.

The first argument of the command is the name of a tree file in newick
format. Every terminal of the tree must have a unique name.

The second argument is the name of a text file with the reference sequence
names, one name per line. Every reference must be a terminal of the tree. If
the file has no names, the command finishes silently without any output.

The third argument is the name of a FASTA file with the sequences. A terminal
of the tree without a sequence in the file will be reported and skipped.

The last argument is the name of the output directory, that will be created
if it does not exist. For each reference, a file '<reference>.fasta' will be
written in that directory, replacing spaces and slashes of the reference name
with underscores. Previous files with the same name will be overwritten.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var maxFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&maxFlag, "max", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 4 {
		return c.UsageError("expecting tree, reference, fasta, and output directory")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}
	refs, err := readRefs(args[1])
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}

	resolve := t.Clades
	if maxFlag {
		resolve = t.LargestClades
	}
	ext, err := resolve(refs)
	if err != nil {
		return fmt.Errorf("on tree file %q: %v", args[0], err)
	}

	coll, err := readSeqs(args[2])
	if err != nil {
		return err
	}

	logger := log.New(c.Stderr())
	dir := args[3]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, r := range refs {
		if err := writeClade(logger, dir, r, ext[r], coll); err != nil {
			return err
		}
	}
	return nil
}

func writeClade(logger *log.Logger, dir, ref string, extent []string, coll *seqs.Collection) (err error) {
	for _, term := range extent {
		if _, ok := coll.Sequence(term); !ok {
			logger.Warn("no sequence for terminal", "terminal", term, "clade", ref)
		}
	}

	name := filepath.Join(dir, fileName(ref))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	recs := coll.Subset(extent)
	if err := seqs.Write(f, recs); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	logger.Info("clade written", "clade", ref, "terminals", len(extent), "sequences", len(recs), "file", name)
	return nil
}

func fileName(ref string) string {
	r := strings.NewReplacer(" ", "_", "/", "_")
	return r.Replace(ref) + ".fasta"
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

func readSeqs(name string) (*seqs.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	coll, err := seqs.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on fasta file %q: %v", name, err)
	}
	return coll, nil
}
