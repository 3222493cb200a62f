// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Stats returns a short human-readable summary of the manager's table
// sizes, in the vein of the teacher package's own Stats method.
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", m.Varnum())
	res += fmt.Sprintf("Allocated:  %d\n", len(m.nodes))
	res += fmt.Sprintf("Unique:     %d\n", len(m.unique))
	res += fmt.Sprintf("Computed:   %d\n", len(m.ite))
	return res
}

// AllNodes walks every node reachable from roots (or, if roots is empty,
// every node ever allocated) in ascending id order and calls visit once per
// node. Constants are visited like any other node when they are in that
// set, so a caller can decide what to draw.
func (m *Manager) AllNodes(visit func(n Node) error, roots ...ID) error {
	var ids []ID
	if len(roots) == 0 {
		ids = make([]ID, len(m.nodes))
		for i := range m.nodes {
			ids[i] = ID(i)
		}
	} else {
		seen := make(map[ID]bool)
		for _, r := range roots {
			m.checkID("AllNodes", r)
			for _, id := range m.FindNodes(r) {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	for _, id := range ids {
		n, _ := m.Lookup(id)
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}

// PrintDot writes a Graphviz DOT description of the nodes reachable from
// roots (the whole unique table if roots is empty) to w. This satisfies the
// graph-emission contract named in spec §6 as an external collaborator of
// the kernel; the kernel has no opinion on layout, only on which nodes and
// edges exist.
func (m *Manager) PrintDot(w io.Writer, roots ...ID) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, `0 [shape=box, label="0", style=filled, height=0.3, width=0.3];`)
	fmt.Fprintln(bw, `1 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)
	err := m.AllNodes(func(n Node) error {
		if n.ID == m.trueID || n.ID == m.falseID {
			return nil
		}
		fmt.Fprintf(bw, "%d %s\n", n.ID, dotlabel(n))
		fmt.Fprintf(bw, "%d -> %d [style=dashed];\n", n.ID, n.Low)
		fmt.Fprintf(bw, "%d -> %d [style=solid];\n", n.ID, n.High)
		return nil
	}, roots...)
	if err != nil {
		bw.Flush()
		return err
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(n Node) string {
	if n.Label != "" {
		return fmt.Sprintf(`[shape=circle, label="%s\n%d"];`, n.Label, n.Top)
	}
	return fmt.Sprintf(`[shape=circle, label="%d"];`, n.Top)
}
