package output

import (
	"fmt"
	"io"
)

// Printer writes indented, ANSI-decorated listings.
type Printer struct {
	w        io.Writer
	indented bool
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Indented returns a printer writing to the same destination, one level deeper.
func (p *Printer) Indented() *Printer {
	return &Printer{w: p.w, indented: true}
}

func (p *Printer) indent() {
	if p.indented {
		fmt.Fprint(p.w, "  ")
	}
}

func (p *Printer) Printf(format string, a ...any) {
	p.indent()
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	p.indent()
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) PrintForm(label string, value any, labelWidth int) {
	p.indent()
	fmt.Fprintf(p.w, "\033[2m%-*s:\033[22m %v\n", labelWidth, label, value)
}

func (p *Printer) PrintHeader(format string, a ...any) {
	p.indent()
	fmt.Fprintf(p.w, "\033[4m"+format+"\033[24m\n", a...)
}
