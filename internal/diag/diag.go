// Package diag renders errors as a message plus call-stack for log output.
package diag

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Diagnostic is an error message and the ordered frames of the stack that
// was captured where the error was first detected.
type Diagnostic struct {
	Message string
	Frames  []string
}

// FromError builds a Diagnostic for err. Frames come from the innermost
// github.com/pkg/errors stack in the chain; errors without one yield no frames.
func FromError(err error) Diagnostic {
	if err == nil {
		return Diagnostic{}
	}

	var st stackTracer
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
	}

	d := Diagnostic{Message: err.Error()}
	if st == nil {
		return d
	}
	for _, f := range st.StackTrace() {
		d.Frames = append(d.Frames, fmt.Sprintf("%n(%s:%d)", f, f, f))
	}
	return d
}

// Render joins the message and frames as "message:frame1\nframe2\n".
func (d Diagnostic) Render() string {
	var sb strings.Builder
	sb.WriteString(d.Message)
	sb.WriteString(":")
	for _, f := range d.Frames {
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (d Diagnostic) String() string {
	return d.Render()
}

// Render is shorthand for FromError(err).Render().
func Render(err error) string {
	return FromError(err).Render()
}
