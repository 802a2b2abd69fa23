package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gldraw/graphics"
)

var (
	// ErrMalformedSource is returned when a shader file has content before
	// its first section marker or lacks one of the two sections.
	ErrMalformedSource = errors.New("shader: malformed source")

	// ErrNoObject is returned when the driver hands out a zero handle.
	ErrNoObject = errors.New("shader: driver returned no object")
)

// CompileError reports a stage the driver refused to compile.
// Log holds the driver's diagnostic text exactly as reported.
type CompileError struct {
	Stage graphics.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s stage compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program the driver refused to link.
// Log holds the driver's diagnostic text exactly as reported.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: program link failed: " + strings.TrimSpace(e.Log)
}
