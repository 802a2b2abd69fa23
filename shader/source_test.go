package shader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Source
	}{
		{
			name: "vertex first",
			in:   "#shader vertex\nv1\nv2\n#shader fragment\nf1\n",
			want: Source{Vertex: "v1\nv2\n", Fragment: "f1\n"},
		},
		{
			name: "fragment first",
			in:   "#shader fragment\nf1\n#shader vertex\nv1\nv2\n",
			want: Source{Vertex: "v1\nv2\n", Fragment: "f1\n"},
		},
		{
			name: "marker as substring",
			in:   "// #shader vertex stage\nv1\n/* #shader fragment */\nf1",
			want: Source{Vertex: "v1\n", Fragment: "f1\n"},
		},
		{
			name: "blank lines kept inside sections",
			in:   "#shader vertex\n\nv1\n\n#shader fragment\nf1\n\n",
			want: Source{Vertex: "\nv1\n\n", Fragment: "f1\n\n"},
		},
		{
			name: "crlf line endings",
			in:   "#shader vertex\r\nv1\r\n#shader fragment\r\nf1\r\n",
			want: Source{Vertex: "v1\n", Fragment: "f1\n"},
		},
		{
			name: "section re-entered",
			in:   "#shader vertex\nv1\n#shader fragment\nf1\n#shader vertex\nv2\n",
			want: Source{Vertex: "v1\nv2\n", Fragment: "f1\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"content before marker", "#version 330\n#shader vertex\nv\n#shader fragment\nf\n", "line 1"},
		{"blank line before marker", "\n#shader vertex\nv\n#shader fragment\nf\n", "line 1"},
		{"no markers", "void main() {}\n", "line 1"},
		{"missing fragment", "#shader vertex\nv\n", "no fragment section"},
		{"missing vertex", "#shader fragment\nf\n", "no vertex section"},
		{"empty vertex section", "#shader vertex\n#shader fragment\nf\n", "no vertex section"},
		{"empty input", "", "no vertex section"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if !errors.Is(err, ErrMalformedSource) {
				t.Fatalf("Parse() error = %v, want ErrMalformedSource", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	got, err := Parse(strings.NewReader("#shader vertex\n" + long + "\n#shader fragment\nf\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Vertex != long+"\n" {
		t.Errorf("len(Vertex) = %d, want %d", len(got.Vertex), len(long)+1)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"#shader vertex\nv1\nv2\n#shader fragment\nf1\n",
		"#shader fragment\nf1\n\n#shader vertex\n\tv1\n",
		"#shader vertex\na\n#shader fragment\nb\n#shader vertex\nc\n",
	}
	for _, in := range inputs {
		first, err := Parse(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		second, err := Parse(strings.NewReader(Format(first)))
		if err != nil {
			t.Fatalf("Parse(Format()) error = %v", err)
		}
		if second != first {
			t.Errorf("round trip of %q = %+v, want %+v", in, second, first)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	if err := os.WriteFile(path, []byte("#shader vertex\nv\n#shader fragment\nf\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if want := (Source{Vertex: "v\n", Fragment: "f\n"}); got != want {
		t.Errorf("ParseFile() = %+v, want %+v", got, want)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.shader"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile(missing) error = %v, want fs.ErrNotExist", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("ParseFile(missing) error = %v, want a *fs.PathError in the chain", err)
	}
}

func TestParseFileMalformedNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.shader")
	if err := os.WriteFile(path, []byte("oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if !errors.Is(err, ErrMalformedSource) {
		t.Fatalf("ParseFile() error = %v, want ErrMalformedSource", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("ParseFile() error = %q, want it to name %s", err, path)
	}
}
