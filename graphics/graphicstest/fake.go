// Package graphicstest provides a scriptable graphics.Context for tests.
package graphicstest

import (
	"fmt"
	"strings"

	"github.com/gogpu/gldraw/graphics"
)

type kind int

const (
	kindShader kind = iota
	kindProgram
	kindVertexArray
	kindBuffer
)

type object struct {
	kind     kind
	stage    graphics.Stage
	source   string
	compiled bool
	attached []uint32
	linked   bool
	valid    bool
	deleted  bool
}

// Fake is an in-memory graphics.Context. It never fails unless told to
// through CompileLogs or LinkLog, and records every call in Calls.
type Fake struct {
	// CompileLogs makes compilation of the given stage fail with the
	// given diagnostic text.
	CompileLogs map[graphics.Stage]string

	// LinkLog makes every link fail with the given diagnostic text.
	LinkLog string

	// Calls holds one line per call, in call order, e.g. "DeleteShader 1".
	Calls []string

	// Closed is set by Close.
	Closed bool

	objects map[uint32]*object
	nextID  uint32
}

var _ graphics.Context = (*Fake)(nil)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{objects: make(map[uint32]*object)}
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *Fake) alloc(o *object) uint32 {
	if f.objects == nil {
		f.objects = make(map[uint32]*object)
	}
	f.nextID++
	f.objects[f.nextID] = o
	return f.nextID
}

func (f *Fake) lookup(id uint32) *object {
	o, ok := f.objects[id]
	if !ok || o.deleted {
		return nil
	}
	return o
}

// LiveShaders returns the number of shader objects not yet deleted.
func (f *Fake) LiveShaders() int {
	return f.live(kindShader)
}

// LivePrograms returns the number of program objects not yet deleted.
func (f *Fake) LivePrograms() int {
	return f.live(kindProgram)
}

// LiveBuffers returns the number of vertex arrays and buffers not yet deleted.
func (f *Fake) LiveBuffers() int {
	return f.live(kindVertexArray) + f.live(kindBuffer)
}

func (f *Fake) live(k kind) int {
	n := 0
	for _, o := range f.objects {
		if o.kind == k && !o.deleted {
			n++
		}
	}
	return n
}

// Source returns the source uploaded to shader id.
func (f *Fake) Source(id uint32) string {
	if o := f.objects[id]; o != nil {
		return o.source
	}
	return ""
}

// Close implements io.Closer.
func (f *Fake) Close() error {
	f.Closed = true
	f.record("Close")
	return nil
}

func (f *Fake) CreateShader(stage graphics.Stage) uint32 {
	id := f.alloc(&object{kind: kindShader, stage: stage})
	f.record("CreateShader %s %d", stage, id)
	return id
}

func (f *Fake) ShaderSource(shader uint32, src string) {
	f.record("ShaderSource %d", shader)
	if o := f.lookup(shader); o != nil {
		o.source = src
	}
}

func (f *Fake) CompileShader(shader uint32) {
	f.record("CompileShader %d", shader)
	o := f.lookup(shader)
	if o == nil {
		return
	}
	_, fail := f.CompileLogs[o.stage]
	o.compiled = !fail
}

func (f *Fake) GetShaderiv(shader uint32, param graphics.Param) int32 {
	o := f.lookup(shader)
	if o == nil {
		return graphics.False
	}
	switch param {
	case graphics.CompileStatus:
		if o.compiled {
			return graphics.True
		}
		return graphics.False
	case graphics.InfoLogLength:
		return int32(len(f.shaderLog(o)))
	}
	return graphics.False
}

func (f *Fake) shaderLog(o *object) string {
	if o.compiled {
		return ""
	}
	return f.CompileLogs[o.stage]
}

func (f *Fake) GetShaderInfoLog(shader uint32) string {
	if o := f.lookup(shader); o != nil {
		return f.shaderLog(o)
	}
	return ""
}

func (f *Fake) DeleteShader(shader uint32) {
	f.record("DeleteShader %d", shader)
	if o := f.lookup(shader); o != nil {
		o.deleted = true
	}
}

func (f *Fake) CreateProgram() uint32 {
	id := f.alloc(&object{kind: kindProgram})
	f.record("CreateProgram %d", id)
	return id
}

func (f *Fake) AttachShader(program, shader uint32) {
	f.record("AttachShader %d %d", program, shader)
	if p := f.lookup(program); p != nil {
		p.attached = append(p.attached, shader)
	}
}

func (f *Fake) DetachShader(program, shader uint32) {
	f.record("DetachShader %d %d", program, shader)
	p := f.lookup(program)
	if p == nil {
		return
	}
	for i, id := range p.attached {
		if id == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			break
		}
	}
}

func (f *Fake) LinkProgram(program uint32) {
	f.record("LinkProgram %d", program)
	p := f.lookup(program)
	if p == nil {
		return
	}
	p.linked = f.LinkLog == ""
	for _, id := range p.attached {
		if s := f.lookup(id); s == nil || !s.compiled {
			p.linked = false
		}
	}
}

func (f *Fake) ValidateProgram(program uint32) {
	f.record("ValidateProgram %d", program)
	if p := f.lookup(program); p != nil {
		p.valid = p.linked
	}
}

func (f *Fake) GetProgramiv(program uint32, param graphics.Param) int32 {
	p := f.lookup(program)
	if p == nil {
		return graphics.False
	}
	var ok bool
	switch param {
	case graphics.LinkStatus:
		ok = p.linked
	case graphics.ValidateStatus:
		ok = p.valid
	case graphics.InfoLogLength:
		return int32(len(f.programLog(p)))
	}
	if ok {
		return graphics.True
	}
	return graphics.False
}

func (f *Fake) programLog(p *object) string {
	if p.linked {
		return ""
	}
	if f.LinkLog != "" {
		return f.LinkLog
	}
	return "link failed: unusable stage attached"
}

func (f *Fake) GetProgramInfoLog(program uint32) string {
	if p := f.lookup(program); p != nil {
		return f.programLog(p)
	}
	return ""
}

func (f *Fake) DeleteProgram(program uint32) {
	f.record("DeleteProgram %d", program)
	if p := f.lookup(program); p != nil {
		p.deleted = true
	}
}

func (f *Fake) UseProgram(program uint32) { f.record("UseProgram %d", program) }

func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation %d %s", program, name)
	if f.lookup(program) == nil {
		return -1
	}
	return 0
}

func (f *Fake) Uniform1f(location int32, v float32) {
	f.record("Uniform1f %d %g", location, v)
}

func (f *Fake) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f %d %g %g %g %g", location, v0, v1, v2, v3)
}

func (f *Fake) UniformMatrix4fv(location int32, transpose bool, m [16]float32) {
	f.record("UniformMatrix4fv %d %t", location, transpose)
}

func (f *Fake) GenVertexArray() uint32 {
	id := f.alloc(&object{kind: kindVertexArray})
	f.record("GenVertexArray %d", id)
	return id
}

func (f *Fake) BindVertexArray(vao uint32) { f.record("BindVertexArray %d", vao) }

func (f *Fake) DeleteVertexArray(vao uint32) {
	f.record("DeleteVertexArray %d", vao)
	if o := f.lookup(vao); o != nil {
		o.deleted = true
	}
}

func (f *Fake) GenBuffer() uint32 {
	id := f.alloc(&object{kind: kindBuffer})
	f.record("GenBuffer %d", id)
	return id
}

func (f *Fake) BindBuffer(target graphics.BufferTarget, buffer uint32) {
	f.record("BindBuffer %d", buffer)
}

func (f *Fake) BufferData(target graphics.BufferTarget, data []float32, usage graphics.BufferUsage) {
	f.record("BufferData %d", len(data))
}

func (f *Fake) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer %d", buffer)
	if o := f.lookup(buffer); o != nil {
		o.deleted = true
	}
}

func (f *Fake) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	f.record("VertexAttribPointer %d %d %d %d", index, size, stride, offset)
}

func (f *Fake) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray %d", index)
}

func (f *Fake) DrawArrays(mode graphics.Primitive, first, count int32) {
	f.record("DrawArrays %d %d %d", mode, first, count)
}

func (f *Fake) ClearColor(r, g, b, a float32) {
	f.record("ClearColor %g %g %g %g", r, g, b, a)
}

func (f *Fake) Clear(mask graphics.ClearMask) { f.record("Clear %#x", uint32(mask)) }

func (f *Fake) Viewport(x, y, width, height int32) {
	f.record("Viewport %d %d %d %d", x, y, width, height)
}

func (f *Fake) GetString(name graphics.StringName) string {
	if name == graphics.Version {
		return "3.3 graphicstest"
	}
	return "graphicstest"
}

// Count returns how many recorded calls start with prefix.
func (f *Fake) Count(prefix string) int {
	n := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}
