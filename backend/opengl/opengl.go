// Package opengl is the OpenGL 3.3 core graphics.Context, built on go-gl.
//
// The window's context must be current on the calling thread before the
// driver is opened; gl.Init resolves the function pointers from it.
// Importing the package registers the driver under the name "opengl".
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/internal/logging"
)

// Name is the registry name of this driver.
const Name = "opengl"

func init() {
	graphics.Register(Name, func() (graphics.Context, error) {
		return New()
	})
}

// Context forwards every call to the current OpenGL context.
type Context struct{}

var _ graphics.Context = (*Context)(nil)

// New loads the OpenGL entry points for the current context.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}
	c := &Context{}
	logging.Logger().Info("opengl: context ready",
		"version", c.GetString(graphics.Version),
		"renderer", c.GetString(graphics.Renderer),
		"glsl", c.GetString(graphics.ShadingLanguageVersion))
	return c, nil
}

func (c *Context) CreateShader(stage graphics.Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (c *Context) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) GetShaderiv(shader uint32, param graphics.Param) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(param), &v)
	return v
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	n := c.GetShaderiv(shader, graphics.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return cString(buf)
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (c *Context) GetProgramiv(program uint32, param graphics.Param) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(param), &v)
	return v
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	n := c.GetProgramiv(program, graphics.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return cString(buf)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (c *Context) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &m[0])
}

func (c *Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (c *Context) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (c *Context) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (c *Context) BindBuffer(target graphics.BufferTarget, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (c *Context) BufferData(target graphics.BufferTarget, data []float32, usage graphics.BufferUsage) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (c *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *Context) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) DrawArrays(mode graphics.Primitive, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask graphics.ClearMask) {
	gl.Clear(uint32(mask))
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) GetString(name graphics.StringName) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

// cString trims the terminating NUL written by the info log queries.
func cString(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
