/*
Package render draws scapegoat trees and balance reports for terminals.

Trees are drawn top-down with box-drawing characters, the left child
above the right one. Nodes which violate α-weight-balance may be
highlighted in color.

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/schuko/tracing"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

// Config controls the output of a Printer.
type Config struct {
	LineWidth int  // value lists are wrapped at this width
	Color     bool // highlight with ANSI colors
}

// Role is the part an output fragment plays.
type Role int8

// Output roles which may be colored.
const (
	Plain Role = iota
	Highlight
	Good
	Bad
)

// Printer writes trees, value lists and reports to an io.Writer.
type Printer struct {
	w       io.Writer
	config  Config
	palette map[Role]*color.Color
}

// NewPrinter creates a printer for w. A nil config is replaced by
// ConfigFromTerminal.
func NewPrinter(w io.Writer, config *Config) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &Printer{w: w, config: *config, palette: makeDefaultPalette()}
	if p.config.LineWidth < 10 {
		p.config.LineWidth = 10
	}
	for _, c := range p.palette {
		if p.config.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func makeDefaultPalette() map[Role]*color.Color {
	return map[Role]*color.Color{
		Plain:     color.New(color.Reset),
		Highlight: color.New(color.FgYellow, color.Bold),
		Good:      color.New(color.FgGreen),
		Bad:       color.New(color.FgRed, color.Bold),
	}
}

func (p *Printer) paint(role Role, s string) string {
	return p.palette[role].Sprint(s)
}

// Tree draws t. Values of nodes violating α-weight-balance are highlighted.
func Tree[T constraints.Ordered](p *Printer, t *scapegoat.Tree[T]) error {
	_, err := io.WriteString(p.w, Draw(p, t))
	return err
}

// Draw returns the drawing of t as a string, ending in a newline.
func Draw[T constraints.Ordered](p *Printer, t *scapegoat.Tree[T]) string {
	if t.IsEmpty() {
		return "(empty)\n"
	}
	hl := make(map[T]bool)
	for _, v := range t.AlphaViolations() {
		hl[v] = true
	}
	label := func(n *scapegoat.Node[T]) string {
		s := fmt.Sprint(n.Value())
		if hl[n.Value()] {
			return p.paint(Highlight, s)
		}
		return s
	}
	root := treeprint.NewWithRoot(label(t.Root()))
	var grow func(branch treeprint.Tree, n *scapegoat.Node[T])
	grow = func(branch treeprint.Tree, n *scapegoat.Node[T]) {
		for _, child := range []*scapegoat.Node[T]{n.Left(), n.Right()} {
			switch {
			case child == nil:
				branch.AddNode("·")
			case child.IsLeaf():
				branch.AddNode(label(child))
			default:
				grow(branch.AddBranch(label(child)), child)
			}
		}
	}
	if !t.Root().IsLeaf() {
		grow(root, t.Root())
	}
	return root.String()
}

// Values writes a title and a list of values, wrapped at the configured
// line width.
func Values[T any](p *Printer, title string, values []T) error {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":")
	col := len(title) + 1
	for _, v := range values {
		s := fmt.Sprint(v)
		if col+1+len(s) > p.config.LineWidth && col > 0 {
			b.WriteString("\n ")
			col = 1
		} else {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(s)
		col += len(s)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Report writes a balance report, the verdict colored.
func (p *Printer) Report(r scapegoat.Report) error {
	if r.Count == 0 {
		_, err := fmt.Fprintln(p.w, p.paint(Good, r.Verdict()))
		return err
	}
	role := Good
	if !r.Balanced {
		role = Bad
	}
	text := strings.TrimSuffix(r.String(), r.Verdict())
	_, err := fmt.Fprintf(p.w, "%s%s\n", text, p.paint(role, r.Verdict()))
	return err
}

// Message writes a line of text in the color of role.
func (p *Printer) Message(role Role, format string, args ...any) {
	fmt.Fprintln(p.w, p.paint(role, fmt.Sprintf(format, args...)))
}
