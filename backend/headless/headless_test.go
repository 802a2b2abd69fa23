package headless

import (
	"strings"
	"testing"

	"github.com/gogpu/gldraw/graphics"
)

const (
	vertexWGSL = `@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}
`
	fragmentWGSL = `@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.5, 0.0, 1.0);
}
`
)

func compile(t *testing.T, c *Context, stage graphics.Stage, src string) uint32 {
	t.Helper()
	id := c.CreateShader(stage)
	if id == 0 {
		t.Fatalf("CreateShader(%s) returned 0", stage)
	}
	c.ShaderSource(id, src)
	c.CompileShader(id)
	return id
}

func TestCompileValidStages(t *testing.T) {
	c := New()
	for _, tt := range []struct {
		stage graphics.Stage
		src   string
	}{
		{graphics.StageVertex, vertexWGSL},
		{graphics.StageFragment, fragmentWGSL},
	} {
		t.Run(tt.stage.String(), func(t *testing.T) {
			id := compile(t, c, tt.stage, tt.src)
			if got := c.GetShaderiv(id, graphics.CompileStatus); got != graphics.True {
				t.Fatalf("CompileStatus = %d, log: %s", got, c.GetShaderInfoLog(id))
			}
			spirv := c.SPIRV(id)
			if len(spirv) < 4 {
				t.Fatalf("SPIR-V too short: %d bytes", len(spirv))
			}
			magic := uint32(spirv[0]) | uint32(spirv[1])<<8 | uint32(spirv[2])<<16 | uint32(spirv[3])<<24
			if magic != 0x07230203 {
				t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", magic)
			}
			if got := c.GetShaderiv(id, graphics.InfoLogLength); got != 0 {
				t.Errorf("InfoLogLength = %d, want 0 after success", got)
			}
		})
	}
}

func TestCompileInvalidSource(t *testing.T) {
	tests := []struct {
		name  string
		stage graphics.Stage
		src   string
	}{
		{"syntax", graphics.StageVertex, "@vertex fn vs_main( -> {"},
		{"undeclared", graphics.StageFragment, "@fragment\nfn fs_main() -> @location(0) vec4<f32> {\n    return missing;\n}\n"},
		{"wrong stage", graphics.StageFragment, vertexWGSL},
		{"vertex attribute in comment", graphics.StageVertex, "// @vertex\n" + fragmentWGSL},
		{"fragment attribute in comment", graphics.StageFragment, "// not a @fragment shader\n" + vertexWGSL},
		{"empty", graphics.StageVertex, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			id := compile(t, c, tt.stage, tt.src)
			if got := c.GetShaderiv(id, graphics.CompileStatus); got != graphics.False {
				t.Fatalf("CompileStatus = %d, want False", got)
			}
			log := c.GetShaderInfoLog(id)
			if log == "" {
				t.Error("failed compile produced an empty log")
			}
			if got := c.GetShaderiv(id, graphics.InfoLogLength); got != int32(len(log))+1 {
				t.Errorf("InfoLogLength = %d, want %d", got, len(log)+1)
			}
		})
	}
}

func TestCompileModuleWithBothStages(t *testing.T) {
	c := New()
	src := vertexWGSL + "\n" + fragmentWGSL
	for _, stage := range []graphics.Stage{graphics.StageVertex, graphics.StageFragment} {
		id := compile(t, c, stage, src)
		if got := c.GetShaderiv(id, graphics.CompileStatus); got != graphics.True {
			t.Errorf("%s: CompileStatus = %d, log: %s", stage, got, c.GetShaderInfoLog(id))
		}
	}
}

func TestCompileLogNamesMissingEntryPoint(t *testing.T) {
	c := New()
	id := compile(t, c, graphics.StageVertex, "// @vertex\n"+fragmentWGSL)
	if log := c.GetShaderInfoLog(id); !strings.Contains(log, "no @vertex entry point") {
		t.Errorf("log = %q, want it to name the missing @vertex entry point", log)
	}
}

func TestLink(t *testing.T) {
	c := New()
	vs := compile(t, c, graphics.StageVertex, vertexWGSL)
	fs := compile(t, c, graphics.StageFragment, fragmentWGSL)

	prog := c.CreateProgram()
	c.AttachShader(prog, vs)
	c.AttachShader(prog, fs)
	c.LinkProgram(prog)
	c.ValidateProgram(prog)

	if got := c.GetProgramiv(prog, graphics.LinkStatus); got != graphics.True {
		t.Fatalf("LinkStatus = %d, log: %s", got, c.GetProgramInfoLog(prog))
	}
	if got := c.GetProgramiv(prog, graphics.ValidateStatus); got != graphics.True {
		t.Errorf("ValidateStatus = %d, want True", got)
	}
}

func TestLinkMissingStage(t *testing.T) {
	c := New()
	vs := compile(t, c, graphics.StageVertex, vertexWGSL)

	prog := c.CreateProgram()
	c.AttachShader(prog, vs)
	c.LinkProgram(prog)

	if got := c.GetProgramiv(prog, graphics.LinkStatus); got != graphics.False {
		t.Fatal("link without a fragment stage succeeded")
	}
	if log := c.GetProgramInfoLog(prog); !strings.Contains(log, "fragment") {
		t.Errorf("link log = %q, want it to mention the fragment stage", log)
	}
}

func TestLinkUncompiledStage(t *testing.T) {
	c := New()
	vs := compile(t, c, graphics.StageVertex, vertexWGSL)
	fs := compile(t, c, graphics.StageFragment, "not wgsl")

	prog := c.CreateProgram()
	c.AttachShader(prog, vs)
	c.AttachShader(prog, fs)
	c.LinkProgram(prog)

	if got := c.GetProgramiv(prog, graphics.LinkStatus); got != graphics.False {
		t.Fatal("link with an uncompiled stage succeeded")
	}
}

func TestRecordsDrawCommands(t *testing.T) {
	c := New()
	prog := c.CreateProgram()
	vao := c.GenVertexArray()

	c.ClearColor(0.1, 0.2, 0.3, 1)
	c.Clear(graphics.ColorBufferBit)
	c.UseProgram(prog)
	c.BindVertexArray(vao)
	c.DrawArrays(graphics.Triangles, 0, 3)

	cmds := c.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(Commands()) = %d, want 2", len(cmds))
	}
	if cmds[0].Op != OpClear || cmds[0].Color != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("Commands()[0] = %+v, want clear with the set color", cmds[0])
	}
	want := Command{Op: OpDrawArrays, Program: prog, VAO: vao, Mode: graphics.Triangles, Count: 3}
	if cmds[1] != want {
		t.Errorf("Commands()[1] = %+v, want %+v", cmds[1], want)
	}

	c.Reset()
	if len(c.Commands()) != 0 {
		t.Error("Reset did not clear recorded commands")
	}
}

func TestUniforms(t *testing.T) {
	c := New()
	prog := c.CreateProgram()

	loc := c.GetUniformLocation(prog, "u_color")
	if loc < 0 {
		t.Fatalf("GetUniformLocation = %d, want >= 0", loc)
	}
	if again := c.GetUniformLocation(prog, "u_color"); again != loc {
		t.Errorf("GetUniformLocation not stable: %d then %d", loc, again)
	}
	c.Uniform4f(loc, 1, 2, 3, 4)
	if got := c.Uniform(loc); len(got) != 4 || got[3] != 4 {
		t.Errorf("Uniform(loc) = %v, want [1 2 3 4]", got)
	}

	if got := c.GetUniformLocation(prog+100, "u_color"); got != -1 {
		t.Errorf("GetUniformLocation(unknown program) = %d, want -1", got)
	}
	c.Uniform1f(-1, 5)
	if got := c.Uniform(-1); got != nil {
		t.Errorf("write to location -1 was stored: %v", got)
	}
}

func TestUniformMatrixTranspose(t *testing.T) {
	c := New()
	prog := c.CreateProgram()
	loc := c.GetUniformLocation(prog, "u_model")

	var m [16]float32
	m[1] = 7 // row 0, column 1
	c.UniformMatrix4fv(loc, true, m)
	if got := c.Uniform(loc); got[4] != 7 {
		t.Errorf("transposed matrix = %v, want element 4 = 7", got)
	}
}

func TestRegistered(t *testing.T) {
	ctx, err := graphics.Open(Name)
	if err != nil {
		t.Fatalf("graphics.Open(%q) = %v", Name, err)
	}
	if _, ok := ctx.(*Context); !ok {
		t.Errorf("graphics.Open(%q) returned %T", Name, ctx)
	}
}

func TestCloseDropsObjects(t *testing.T) {
	c := New()
	c.CreateShader(graphics.StageVertex)
	c.CreateProgram()
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if s, p := c.Live(); s != 0 || p != 0 {
		t.Errorf("Live() = %d, %d after Close, want 0, 0", s, p)
	}
}
