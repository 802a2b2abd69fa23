package shader

import (
	"fmt"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/internal/logging"
)

// Shader is a compiled stage waiting to be linked. Link consumes it.
type Shader struct {
	ID    uint32
	Stage graphics.Stage
}

// Program is a linked, validated program. The creator owns it and must
// call Delete when done.
type Program struct {
	ID uint32
}

// Use makes p the active program.
func (p Program) Use(gfx graphics.Context) {
	gfx.UseProgram(p.ID)
}

// Uniform returns the location of the named uniform, or -1.
func (p Program) Uniform(gfx graphics.Context, name string) int32 {
	return gfx.GetUniformLocation(p.ID, name)
}

// Delete releases the program. Deleting the zero Program is a no-op.
func (p Program) Delete(gfx graphics.Context) {
	if p.ID != 0 {
		gfx.DeleteProgram(p.ID)
	}
}

// Compile creates a stage object, uploads src and compiles it.
//
// On failure the stage object is deleted and a *CompileError carrying the
// driver's log is returned.
func Compile(gfx graphics.Context, stage graphics.Stage, src string) (Shader, error) {
	id := gfx.CreateShader(stage)
	if id == 0 {
		return Shader{}, fmt.Errorf("%w: %s stage", ErrNoObject, stage)
	}
	keep := false
	defer func() {
		if !keep {
			gfx.DeleteShader(id)
		}
	}()

	gfx.ShaderSource(id, src)
	gfx.CompileShader(id)
	if gfx.GetShaderiv(id, graphics.CompileStatus) == graphics.False {
		return Shader{}, &CompileError{Stage: stage, Log: gfx.GetShaderInfoLog(id)}
	}

	keep = true
	logging.Logger().Debug("shader: stage compiled", "stage", stage, "id", id)
	return Shader{ID: id, Stage: stage}, nil
}

// Link attaches shaders to a new program, links and validates it.
//
// The stage objects are detached and deleted right after linking, whatever
// the outcome. A failed link deletes the program and returns a *LinkError
// carrying the driver's log. A failed validation is only logged: it
// depends on draw-time state such as the bound vertex array.
func Link(gfx graphics.Context, shaders ...Shader) (Program, error) {
	program := gfx.CreateProgram()
	if program == 0 {
		deleteShaders(gfx, shaders)
		return Program{}, fmt.Errorf("%w: program", ErrNoObject)
	}

	for _, sh := range shaders {
		gfx.AttachShader(program, sh.ID)
	}
	gfx.LinkProgram(program)
	gfx.ValidateProgram(program)
	for _, sh := range shaders {
		gfx.DetachShader(program, sh.ID)
	}
	deleteShaders(gfx, shaders)

	if gfx.GetProgramiv(program, graphics.LinkStatus) == graphics.False {
		log := gfx.GetProgramInfoLog(program)
		gfx.DeleteProgram(program)
		return Program{}, &LinkError{Log: log}
	}
	if gfx.GetProgramiv(program, graphics.ValidateStatus) == graphics.False {
		logging.Logger().Debug("shader: program did not validate",
			"id", program, "log", gfx.GetProgramInfoLog(program))
	}

	logging.Logger().Debug("shader: program linked", "id", program, "stages", len(shaders))
	return Program{ID: program}, nil
}

func deleteShaders(gfx graphics.Context, shaders []Shader) {
	for _, sh := range shaders {
		gfx.DeleteShader(sh.ID)
	}
}

// Build parses the shader file at path and links its two stages into a
// program. It stops at the first failing step.
func Build(gfx graphics.Context, path string) (Program, error) {
	src, err := ParseFile(path)
	if err != nil {
		return Program{}, err
	}
	prog, err := BuildSource(gfx, src)
	if err != nil {
		return Program{}, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// BuildSource compiles and links an already parsed source.
func BuildSource(gfx graphics.Context, src Source) (Program, error) {
	vs, err := Compile(gfx, graphics.StageVertex, src.Vertex)
	if err != nil {
		return Program{}, err
	}
	fs, err := Compile(gfx, graphics.StageFragment, src.Fragment)
	if err != nil {
		gfx.DeleteShader(vs.ID)
		return Program{}, err
	}
	return Link(gfx, vs, fs)
}
