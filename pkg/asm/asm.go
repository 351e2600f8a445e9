// Package asm is the textual-assembly layer of the compiler: a small
// writer for AT&T-syntax x86-64 source, the System V register tables the
// code generator addresses, and a best-effort formatting pass over the
// finished output.
package asm

import (
	"fmt"
	"strings"

	"github.com/klauspost/asmfmt"
)

// ArgumentRegisters lists the integer argument registers in System V
// AMD64 order. The first six call arguments travel in these; the rest go
// on the stack.
var ArgumentRegisters = [...]string{
	"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9",
}

// ScratchRegisters is the register pool the code generator draws
// temporaries from. %r10 and %r11 are caller-saved on System V; the
// generator pushes and pops them around every call so they can live in
// the pool anyway.
var ScratchRegisters = [...]string{
	"%rbx", "%r10", "%r11", "%r12", "%r13", "%r14", "%r15",
}

// Writer accumulates assembly source text. All emission in the compiler
// funnels through one Writer so section switches and blank-line spacing
// stay consistent.
type Writer struct {
	out strings.Builder
}

// Section emits a section directive such as ".data" or ".text".
func (w *Writer) Section(name string) {
	fmt.Fprintf(&w.out, "%s\n", name)
}

// Global marks name as externally visible.
func (w *Writer) Global(name string) {
	fmt.Fprintf(&w.out, ".global %s\n", name)
}

// Label emits "name:" on its own line.
func (w *Writer) Label(name string) {
	fmt.Fprintf(&w.out, "%s:\n", name)
}

// Op emits one instruction line.
func (w *Writer) Op(format string, args ...any) {
	fmt.Fprintf(&w.out, format+"\n", args...)
}

// Directive emits a tab-indented data directive such as `.quad 7` or
// `.string "..."`.
func (w *Writer) Directive(format string, args ...any) {
	fmt.Fprintf(&w.out, "\t"+format+"\n", args...)
}

// Blank emits an empty line.
func (w *Writer) Blank() {
	w.out.WriteByte('\n')
}

func (w *Writer) String() string {
	return w.out.String()
}

// Format runs asmfmt over src. The output of the code generator is
// already valid assembler input, so a formatter failure is not an error;
// the text is returned untouched.
func Format(src string) string {
	formatted, err := asmfmt.Format(strings.NewReader(src))
	if err != nil {
		return src
	}
	return string(formatted)
}
