package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gldraw/internal/logging"
)

// Section markers. A line containing one of these switches the section
// that following lines belong to; the marker line itself is dropped.
const (
	VertexMarker   = "#shader vertex"
	FragmentMarker = "#shader fragment"
)

// maxLineLength bounds a single source line.
const maxLineLength = 1 << 20

// Source holds the two stage sources of a shader file. Each line of a
// section is kept verbatim and terminated with a newline.
type Source struct {
	Vertex   string
	Fragment string
}

// ParseFile reads and parses the shader file at path.
func ParseFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("shader: %w", err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	logging.Logger().Debug("shader: parsed source",
		"path", path, "vertex_bytes", len(src.Vertex), "fragment_bytes", len(src.Fragment))
	return src, nil
}

// Parse splits r into its vertex and fragment sections.
//
// A section may appear more than once; later lines are appended to it.
// Any line before the first marker, blank or not, makes the source
// malformed, and so does a missing or empty section.
func Parse(r io.Reader) (Source, error) {
	var vertex, fragment strings.Builder
	var current *strings.Builder

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		switch {
		case strings.Contains(text, VertexMarker):
			current = &vertex
		case strings.Contains(text, FragmentMarker):
			current = &fragment
		case current == nil:
			return Source{}, fmt.Errorf("%w: line %d precedes the first section marker", ErrMalformedSource, line)
		default:
			current.WriteString(text)
			current.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return Source{}, fmt.Errorf("shader: read: %w", err)
	}

	src := Source{Vertex: vertex.String(), Fragment: fragment.String()}
	if src.Vertex == "" {
		return Source{}, fmt.Errorf("%w: no vertex section", ErrMalformedSource)
	}
	if src.Fragment == "" {
		return Source{}, fmt.Errorf("%w: no fragment section", ErrMalformedSource)
	}
	return src, nil
}

// Format writes src back into the file format, vertex section first.
// Parse(Format(src)) yields src again for any src returned by Parse.
func Format(src Source) string {
	var b strings.Builder
	b.Grow(len(VertexMarker) + len(FragmentMarker) + len(src.Vertex) + len(src.Fragment) + 2)
	b.WriteString(VertexMarker)
	b.WriteByte('\n')
	b.WriteString(src.Vertex)
	b.WriteString(FragmentMarker)
	b.WriteByte('\n')
	b.WriteString(src.Fragment)
	return b.String()
}
