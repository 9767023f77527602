package output

import (
	"fmt"
	"io"
)

type Class int

const (
	Required Class = iota
	Error
	Normal
	Verbose
)

type Printer struct {
	classes   map[Class]bool
	terminal  io.Writer
	diagnosis io.Writer
	Style     Styler
}

// NewPrinterTo prints regular output to terminal and errors to diagnosis.
func NewPrinterTo(terminal io.Writer, diagnosis io.Writer, include []Class, allowEscapes bool) (p Printer) {
	p = Printer{
		classes:   map[Class]bool{},
		terminal:  terminal,
		diagnosis: diagnosis,
		Style:     Styler(allowEscapes),
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

func (p Printer) Includes(class Class) bool {
	return p.classes[class]
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := &p.terminal
	if class == Error {
		target = &p.diagnosis
	}
	fmt.Fprintf(*target, format, values...)
}
