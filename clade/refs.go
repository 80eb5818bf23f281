// Copyright © 2025 D. Aguirre <daguirre.bio@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clade

import (
	"bufio"
	"io"
	"strings"
)

// ReadRefs reads a list of reference terminal names,
// one name per line.
// Only the first comma-delimited field of each line is used,
// names are trimmed of surrounding spaces,
// blank lines are skipped,
// and repeated names are stored only once.
func ReadRefs(r io.Reader) ([]string, error) {
	var refs []string
	seen := make(map[string]bool)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := sc.Text()
		if i := strings.Index(name, ","); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		refs = append(refs, name)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
