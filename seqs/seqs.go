// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqs implements a collection
// of the sequences in a FASTA file,
// indexed by name
// and keeping the order of the source file.
package seqs

import (
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
)

// A Collection is a set of named sequences.
type Collection struct {
	recs []seq.Sequence
	ids  map[string]int
}

// Read reads the sequences of a FASTA file.
//
// The name of a record is the first whitespace-delimited field
// of its header line.
// If two or more records have the same name,
// only the first one is kept.
func Read(r io.Reader) (*Collection, error) {
	c := &Collection{
		ids: make(map[string]int),
	}

	fr := fasta.NewReader(r)
	for {
		s, err := fr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		fields := strings.Fields(s.Name)
		if len(fields) == 0 {
			return nil, fmt.Errorf("record %d: empty sequence name", len(c.recs)+1)
		}
		s.Name = fields[0]
		if _, dup := c.ids[s.Name]; dup {
			continue
		}
		c.ids[s.Name] = len(c.recs)
		c.recs = append(c.recs, s)
	}
	return c, nil
}

// Len returns the number of sequences in the collection.
func (c *Collection) Len() int {
	return len(c.recs)
}

// Names returns the sequence names,
// in the order of the source file.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.recs))
	for _, s := range c.recs {
		names = append(names, s.Name)
	}
	return names
}

// Sequence returns the sequence with a given name,
// the second value is false if the name is not in the collection.
func (c *Collection) Sequence(name string) (seq.Sequence, bool) {
	i, ok := c.ids[name]
	if !ok {
		return seq.Sequence{}, false
	}
	return c.recs[i], true
}

// Subset returns the sequences whose names are in the given set,
// in the order of the source file.
// Names without a sequence are ignored.
func (c *Collection) Subset(names []string) []seq.Sequence {
	in := make(map[string]bool, len(names))
	for _, n := range names {
		in[n] = true
	}

	var recs []seq.Sequence
	for _, s := range c.recs {
		if in[s.Name] {
			recs = append(recs, s)
		}
	}
	return recs
}

// Write writes sequences as FASTA records.
func Write(w io.Writer, recs []seq.Sequence) error {
	fw := fasta.NewWriter(w)
	for _, s := range recs {
		if err := fw.Write(s); err != nil {
			return err
		}
	}
	return fw.Flush()
}
