// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package seqs_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/daguirre/cladesort/seqs"
)

const fastaInput = `>B some description
ACGTACGT
ACGT
>D
TTTTGGGG
>A
CCCC
`

func readCollection(t testing.TB, s string) *seqs.Collection {
	t.Helper()

	c, err := seqs.Read(strings.NewReader(s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestRead(t *testing.T) {
	c := readCollection(t, fastaInput)

	if c.Len() != 3 {
		t.Fatalf("sequences: got %d, want %d", c.Len(), 3)
	}
	want := []string{"B", "D", "A"}
	if names := c.Names(); !reflect.DeepEqual(names, want) {
		t.Errorf("names: got %v, want %v", names, want)
	}

	s, ok := c.Sequence("B")
	if !ok {
		t.Fatalf("sequence %q: not in collection", "B")
	}
	if res := string(s.Residues); res != "ACGTACGTACGT" {
		t.Errorf("sequence %q: got residues %q, want %q", "B", res, "ACGTACGTACGT")
	}

	if _, ok := c.Sequence("X"); ok {
		t.Errorf("sequence %q: should not be in collection", "X")
	}
}

func TestReadRepeated(t *testing.T) {
	c := readCollection(t, ">B\nAAAA\n>B\nCCCC\n")

	if c.Len() != 1 {
		t.Fatalf("sequences: got %d, want %d", c.Len(), 1)
	}
	s, ok := c.Sequence("B")
	if !ok {
		t.Fatalf("sequence %q: not in collection", "B")
	}
	if res := string(s.Residues); res != "AAAA" {
		t.Errorf("sequence %q: got residues %q, want %q (the first record)", "B", res, "AAAA")
	}
}

func TestSubset(t *testing.T) {
	c := readCollection(t, fastaInput)

	recs := c.Subset([]string{"A", "B", "X"})
	got := make([]string, 0, len(recs))
	for _, s := range recs {
		got = append(got, s.Name)
	}

	// source file order, unknown names ignored
	want := []string{"B", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("subset: got %v, want %v", got, want)
	}
}

func TestWrite(t *testing.T) {
	c := readCollection(t, fastaInput)
	recs := c.Subset([]string{"B", "D"})

	var first bytes.Buffer
	if err := seqs.Write(&first, recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nc, err := seqs.Read(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error when re-reading: %v", err)
	}
	if nc.Len() != len(recs) {
		t.Fatalf("re-read sequences: got %d, want %d", nc.Len(), len(recs))
	}
	for _, s := range recs {
		ns, ok := nc.Sequence(s.Name)
		if !ok {
			t.Errorf("sequence %q: not in re-read collection", s.Name)
			continue
		}
		if string(ns.Residues) != string(s.Residues) {
			t.Errorf("sequence %q: got residues %q, want %q", s.Name, ns.Residues, s.Residues)
		}
	}

	var second bytes.Buffer
	if err := seqs.Write(&second, recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("repeated writes differ:\nfirst:\n%s\nsecond:\n%s", first.Bytes(), second.Bytes())
	}
}
