package qtable

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/markkurossi/tabulate"
)

var styles = map[string]tabulate.Style{
	"ascii":   tabulate.ASCII,
	"unicode": tabulate.Unicode,
	"light":   tabulate.UnicodeLight,
	"bold":    tabulate.UnicodeBold,
}

// ParseStyle maps a style name to a table style.
func ParseStyle(name string) (tabulate.Style, error) {
	style, ok := styles[strings.ToLower(name)]
	if !ok {
		var names []string
		for n := range styles {
			names = append(names, n)
		}
		sort.Strings(names)
		return tabulate.UnicodeLight,
			fmt.Errorf("unknown table style %q, expected one of %s", name, strings.Join(names, ", "))
	}
	return style, nil
}

/*
RenderTable prints the truth table with one column per qubit, the input
columns followed by the output columns. The first row marks the INPUTS and
OUTPUTS bands; output columns of garbage qubits are labelled "garbage".
Ancilla input columns are printed in italics.
*/
func RenderTable(o io.Writer, c Computation, t *Table, style tabulate.Style) {
	tab := tabulate.New(style)

	width := t.NumQubits
	for q := 0; q < width; q++ {
		tab.Header(c.Label(q)).SetAlign(tabulate.MC)
	}
	for q := 0; q < width; q++ {
		label := c.Label(q)
		if c.IsGarbage(q) {
			label = "garbage"
		}
		tab.Header(label).SetAlign(tabulate.MC)
	}

	band := tab.Row()
	for q := 0; q < width; q++ {
		data := ""
		if q == 0 {
			data = "INPUTS"
		}
		band.Column(data).SetFormat(tabulate.FmtBold)
	}
	for q := 0; q < width; q++ {
		data := ""
		if q == 0 {
			data = "OUTPUTS"
		}
		band.Column(data).SetFormat(tabulate.FmtBold)
	}

	for _, r := range t.Rows {
		row := tab.Row()
		for q, bit := range r.Input {
			col := row.Column(bitString(bit))
			if c.IsAncilla(q) {
				col.SetFormat(tabulate.FmtItalic)
			}
		}
		for _, bit := range r.Output {
			row.Column(bitString(bit))
		}
	}

	tab.Print(o)
}

// RenderStats prints the circuit statistics.
func RenderStats(o io.Writer, s Stats, style tabulate.Style) {
	tab := tabulate.New(style)
	tab.Header("Statistic").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	add := func(label string, value interface{}) {
		row := tab.Row()
		row.Column(label)
		row.Column(fmt.Sprintf("%v", value))
	}

	add("Quantum operations", s.NumOps)
	for t := X; t <= Custom; t++ {
		if s.Gates[t] == 0 {
			continue
		}
		row := tab.Row()
		row.Column("├╴" + t.String()).SetFormat(tabulate.FmtItalic)
		row.Column(fmt.Sprintf("%d", s.Gates[t])).SetFormat(tabulate.FmtItalic)
	}
	add("Qubits", s.NumQubits)
	add("Data qubits", s.NumData)
	add("Ancilla qubits", s.NumAncilla)
	add("Garbage qubits", s.NumGarbage)

	row := tab.Row()
	row.Column("Quantum cost").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", s.QuantumCost)).SetFormat(tabulate.FmtBold)
	row = tab.Row()
	row.Column("Transistor cost").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", s.TransistorCost)).SetFormat(tabulate.FmtBold)

	tab.Print(o)
}

func bitString(bit bool) string {
	if bit {
		return "1"
	}
	return "0"
}
