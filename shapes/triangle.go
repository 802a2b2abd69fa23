package shapes

import (
	"math"
	"time"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/internal/logging"
	"github.com/gogpu/gldraw/platform"
	"github.com/gogpu/gldraw/shader"
)

// Uniform names the triangle's program must declare.
const (
	UniformModel = "u_model"
	UniformColor = "u_color"
)

// Triangle draws a single colored triangle rotating around the origin.
//
// The program is built from the shader file at Path. Its vertex stage
// reads a vec2 position at attribute 0 and may use the mat4 u_model
// uniform; its fragment stage may use the vec4 u_color uniform.
//
// Space pauses and resumes the rotation, R resets it. With Reload set,
// the program is rebuilt whenever the file changes on disk; a rebuild that
// fails is logged and the previous program stays in use.
type Triangle struct {
	Path     string
	Vertices [3]f32.Vec2
	Color    f32.Vec4
	Scale    float32

	// Speed is the rotation speed in radians per second.
	Speed float32

	Reload bool

	gfx      *graphics.Shared
	program  shader.Program
	vao, vbo uint32
	uModel   int32
	uColor   int32
	watcher  *shader.Watcher

	angle  float32
	paused bool
}

// NewTriangle returns an equilateral triangle with its shaders at path,
// turning a quarter turn per second.
func NewTriangle(path string) *Triangle {
	return &Triangle{
		Path: path,
		Vertices: [3]f32.Vec2{
			{0, 0.5},
			{-0.433, -0.25},
			{0.433, -0.25},
		},
		Color: f32.Vec4{1, 0.5, 0.2, 1},
		Scale: 1,
		Speed: math.Pi / 2,
	}
}

func (t *Triangle) Init(gfx *graphics.Shared) error {
	t.gfx = gfx

	prog, err := shader.Build(gfx, t.Path)
	if err != nil {
		return err
	}
	t.setProgram(prog)

	t.vao = gfx.GenVertexArray()
	gfx.BindVertexArray(t.vao)
	t.vbo = gfx.GenBuffer()
	gfx.BindBuffer(graphics.ArrayBuffer, t.vbo)
	gfx.BufferData(graphics.ArrayBuffer, t.vertexData(), graphics.StaticDraw)
	gfx.VertexAttribPointer(0, 2, 2*4, 0)
	gfx.EnableVertexAttribArray(0)
	gfx.BindVertexArray(0)

	if t.Reload {
		w, err := shader.Watch(t.Path)
		if err != nil {
			logging.Logger().Warn("shapes: shader hot reload disabled", "path", t.Path, "err", err)
		} else {
			t.watcher = w
		}
	}
	return nil
}

func (t *Triangle) vertexData() []float32 {
	data := make([]float32, 0, 6)
	for _, v := range t.Vertices {
		data = append(data, v[0], v[1])
	}
	return data
}

func (t *Triangle) setProgram(p shader.Program) {
	t.program.Delete(t.gfx)
	t.program = p
	t.uModel = p.Uniform(t.gfx, UniformModel)
	t.uColor = p.Uniform(t.gfx, UniformColor)
}

func (t *Triangle) Update(elapsed time.Duration) error {
	if t.watcher != nil && len(t.watcher.Changed()) > 0 {
		t.reload()
	}
	if !t.paused {
		t.angle = float32(math.Mod(float64(t.angle+t.Speed*float32(elapsed.Seconds())), 2*math.Pi))
	}
	return nil
}

func (t *Triangle) reload() {
	prog, err := shader.Build(t.gfx, t.Path)
	if err != nil {
		logging.Logger().Warn("shapes: shader reload failed, keeping previous program", "path", t.Path, "err", err)
		return
	}
	t.setProgram(prog)
	logging.Logger().Info("shapes: shader reloaded", "path", t.Path)
}

func (t *Triangle) Input(ev platform.Event) error {
	k, ok := ev.(platform.KeyEvent)
	if !ok || k.Action != platform.Press {
		return nil
	}
	switch k.Key {
	case platform.KeySpace:
		t.paused = !t.paused
	case platform.KeyR:
		t.angle = 0
	}
	return nil
}

// Model returns the current row-major model matrix.
func (t *Triangle) Model() f32.Mat4 {
	return mul(rotationZ(t.angle), scale(t.Scale))
}

// Angle returns the current rotation in radians.
func (t *Triangle) Angle() float32 {
	return t.angle
}

func (t *Triangle) Draw() error {
	t.program.Use(t.gfx)
	t.gfx.UniformMatrix4fv(t.uModel, true, t.Model())
	c := t.Color
	t.gfx.Uniform4f(t.uColor, c[0], c[1], c[2], c[3])
	t.gfx.BindVertexArray(t.vao)
	t.gfx.DrawArrays(graphics.Triangles, 0, 3)
	t.gfx.BindVertexArray(0)
	return nil
}

// Close stops watching the shader file and deletes the triangle's
// graphics objects.
func (t *Triangle) Close() error {
	var err error
	if t.watcher != nil {
		err = t.watcher.Close()
		t.watcher = nil
	}
	if t.gfx == nil {
		return err
	}
	t.program.Delete(t.gfx)
	t.program = shader.Program{}
	if t.vbo != 0 {
		t.gfx.DeleteBuffer(t.vbo)
		t.vbo = 0
	}
	if t.vao != 0 {
		t.gfx.DeleteVertexArray(t.vao)
		t.vao = 0
	}
	return err
}
