// SPDX-License-Identifier: MIT

package circuit

import "strings"

// Sketch renders the board one row per line:
//
//	o  component body
//	n  cell holding at least one pin
//	w  cell holding only wires
//	.  empty cell
func (c *Circuit) Sketch() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	for _, row := range c.layout {
		b.WriteString("[")
		for _, u := range row {
			b.WriteByte(' ')
			b.WriteByte(glyph(u))
		}
		b.WriteString(" ]\n")
	}
	return b.String()
}

func glyph(u Unit) byte {
	if u.occupiedBy != "" {
		return 'o'
	}
	wire := false
	for _, l := range u.connections {
		switch l.Kind {
		case LinkPin:
			return 'n'
		case LinkWire:
			wire = true
		}
	}
	if wire {
		return 'w'
	}
	return '.'
}
