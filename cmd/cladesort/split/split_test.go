// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package split

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/daguirre/cladesort/seqs"
)

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"B":             "B.fasta",
		"ref A/1":       "ref_A_1.fasta",
		"NC_045512.2":   "NC_045512.2.fasta",
		"sp. nov. 2019": "sp._nov._2019.fasta",
	}
	for ref, want := range tests {
		if got := fileName(ref); got != want {
			t.Errorf("reference %q: got file name %q, want %q", ref, got, want)
		}
	}
}

func TestWriteClade(t *testing.T) {
	coll, err := seqs.Read(strings.NewReader(">A\nACGT\n>B\nGGGG\n>C\nTTTT\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir := t.TempDir()
	logger := log.New(io.Discard)

	ref := "ref A/1"
	name := filepath.Join(dir, "ref_A_1.fasta")

	// a pre-existing file must be overwritten
	if err := os.WriteFile(name, []byte("stale content\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// X is a tree terminal without a sequence record:
	// it must be skipped
	// while the remaining records are still written
	extent := []string{"A", "B", "X"}
	if err := writeClade(logger, dir, ref, extent, coll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nc, err := seqs.Read(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("unexpected error when re-reading %q: %v", name, err)
	}
	want := []string{"A", "B"}
	if got := nc.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("file %q: got sequences %v, want %v", name, got, want)
	}
	if bytes.Contains(first, []byte("stale")) {
		t.Errorf("file %q: previous content not overwritten", name)
	}

	// repeated runs must be byte-identical
	if err := writeClade(logger, dir, ref, extent, coll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("file %q: repeated writes differ:\nfirst:\n%s\nsecond:\n%s", name, first, second)
	}
}
