package poset

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes the order to w as a Graphviz digraph named name,
// one node per element and one arrow per related pair. The closed
// relation is emitted as-is; feed the output to dot for debugging.
func (p *Poset) WriteDOT(w io.Writer, name string) error {
	if name == "" {
		name = "poset"
	}
	if _, err := fmt.Fprintf(w, "digraph %q {\n", name); err != nil {
		return err
	}
	for _, n := range p.names {
		if _, err := fmt.Fprintf(w, "  %q;\n", n); err != nil {
			return err
		}
	}
	for i := range p.succ {
		it := p.succ[i].Iterator()
		for it.HasNext() {
			j := it.Next()
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", p.names[i], p.names[j]); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}

// DOT returns the Graphviz rendering of WriteDOT as a string.
func (p *Poset) DOT(name string) string {
	var sb strings.Builder
	_ = p.WriteDOT(&sb, name)

	return sb.String()
}
