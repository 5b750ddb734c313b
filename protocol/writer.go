package protocol

import (
	"bufio"
	"io"
	"strings"
)

const (
	// CapabilityPush advertises support for the push command.
	CapabilityPush = "push"
	// CapabilityFetch advertises support for the fetch command.
	CapabilityFetch = "fetch"
)

// Writer formats helper responses. Output is buffered until Flush.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) line(parts ...string) error {
	_, err := w.w.WriteString(strings.Join(parts, " ") + "\n")
	return err
}

// Capabilities writes each capability as mandatory (prefixed with '*').
func (w *Writer) Capabilities(caps ...string) error {
	for _, c := range caps {
		if err := w.line("*" + c); err != nil {
			return err
		}
	}
	return nil
}

// Ref writes `<revision> <name>`.
func (w *Writer) Ref(revision, name string) error {
	return w.line(revision, name)
}

// SymRef writes `@<target> <name>`.
func (w *Writer) SymRef(target, name string) error {
	return w.line("@"+target, name)
}

// OK reports a successful push of ref.
func (w *Writer) OK(ref string) error {
	return w.line("ok", ref)
}

// Error reports a failed push of ref. The reason is flattened to one line.
func (w *Writer) Error(ref, reason string) error {
	reason = strings.Join(strings.Fields(reason), " ")
	return w.line("error", ref, reason)
}

// Unknown answers a command the helper does not understand.
func (w *Writer) Unknown() error {
	return w.line("unknown command")
}

// End writes the blank line that terminates a response.
func (w *Writer) End() error {
	_, err := w.w.WriteString("\n")
	return err
}

// Flush writes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
