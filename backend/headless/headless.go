// Package headless provides a pure Go graphics.Context that needs no GPU.
//
// Shader stages are WGSL. Compilation runs the naga compiler, so malformed
// sources fail with naga's diagnostics exactly like a driver would report
// them. Draw calls are recorded rather than rasterized and can be inspected
// with Commands.
//
// Importing the package registers the driver under the name "headless".
package headless

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/internal/logging"
)

// Name is the registry name of this driver.
const Name = "headless"

func init() {
	graphics.Register(Name, func() (graphics.Context, error) {
		return New(), nil
	})
}

// entryStage is the entry point stage a source must declare to compile as
// the given shader stage.
var entryStage = map[graphics.Stage]ir.ShaderStage{
	graphics.StageVertex:   ir.StageVertex,
	graphics.StageFragment: ir.StageFragment,
}

type shaderObject struct {
	stage    graphics.Stage
	source   string
	spirv    []byte
	compiled bool
	log      string
}

type programObject struct {
	attached []uint32
	linked   bool
	valid    bool
	log      string
}

// Op identifies a recorded command.
type Op uint8

const (
	OpClear Op = iota
	OpDrawArrays
)

// Command is one recorded draw-time call.
type Command struct {
	Op      Op
	Program uint32
	VAO     uint32
	Mode    graphics.Primitive
	First   int32
	Count   int32
	Color   [4]float32
}

// Context is the headless driver. It is not safe for concurrent use.
type Context struct {
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	objects  map[uint32]bool
	nextID   uint32

	program    uint32
	vao        uint32
	clearColor [4]float32
	viewport   [4]int32
	uniforms   map[int32][]float32

	commands []Command
	closed   bool
}

var _ graphics.Context = (*Context)(nil)

// New returns an empty headless context.
func New() *Context {
	return &Context{
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
		objects:  make(map[uint32]bool),
		uniforms: make(map[int32][]float32),
	}
}

func (c *Context) id() uint32 {
	c.nextID++
	return c.nextID
}

// Commands returns the commands recorded since the last Reset.
func (c *Context) Commands() []Command {
	return c.commands
}

// Reset forgets recorded commands.
func (c *Context) Reset() {
	c.commands = c.commands[:0]
}

// Live returns the number of shader and program objects not yet deleted.
func (c *Context) Live() (shaders, programs int) {
	return len(c.shaders), len(c.programs)
}

// SPIRV returns the compiled module of a shader object, or nil.
func (c *Context) SPIRV(shader uint32) []byte {
	if sh := c.shaders[shader]; sh != nil {
		return sh.spirv
	}
	return nil
}

// Uniform returns the last value written to location.
func (c *Context) Uniform(location int32) []float32 {
	return c.uniforms[location]
}

// Close implements io.Closer. It drops every object still alive.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if n, m := c.Live(); n > 0 || m > 0 {
		logging.Logger().Debug("headless: closing with live objects", "shaders", n, "programs", m)
	}
	clear(c.shaders)
	clear(c.programs)
	clear(c.objects)
	return nil
}

func (c *Context) CreateShader(stage graphics.Stage) uint32 {
	if _, ok := entryStage[stage]; !ok {
		return 0
	}
	id := c.id()
	c.shaders[id] = &shaderObject{stage: stage}
	return id
}

func (c *Context) ShaderSource(shader uint32, src string) {
	if sh := c.shaders[shader]; sh != nil {
		sh.source = src
	}
}

func (c *Context) CompileShader(shader uint32) {
	sh := c.shaders[shader]
	if sh == nil {
		return
	}
	sh.compiled, sh.spirv, sh.log = false, nil, ""

	code, err := compileStage(sh.source, entryStage[sh.stage])
	if err != nil {
		sh.log = fmt.Sprintf("error: %s stage: %v\n", sh.stage, err)
		return
	}
	sh.spirv = code
	sh.compiled = true
}

// compileStage runs the naga pipeline on src and fails unless the parsed
// module declares an entry point for stage.
func compileStage(src string, stage ir.ShaderStage) ([]byte, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, err
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("lowering error: %w", err)
	}
	if !slices.ContainsFunc(module.EntryPoints, func(ep ir.EntryPoint) bool { return ep.Stage == stage }) {
		return nil, fmt.Errorf("module declares no %s entry point", stageAttribute(stage))
	}

	opts := naga.DefaultOptions()
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("validation failed: %w", &verrs[0])
	}
	return naga.GenerateSPIRV(module, spirv.Options{Version: opts.SPIRVVersion, Debug: opts.Debug})
}

func stageAttribute(stage ir.ShaderStage) string {
	if stage == ir.StageFragment {
		return "@fragment"
	}
	return "@vertex"
}

func (c *Context) GetShaderiv(shader uint32, param graphics.Param) int32 {
	sh := c.shaders[shader]
	if sh == nil {
		return graphics.False
	}
	switch param {
	case graphics.CompileStatus:
		return boolean(sh.compiled)
	case graphics.InfoLogLength:
		return logLength(sh.log)
	}
	return graphics.False
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	if sh := c.shaders[shader]; sh != nil {
		return sh.log
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	delete(c.shaders, shader)
}

func (c *Context) CreateProgram() uint32 {
	id := c.id()
	c.programs[id] = &programObject{}
	return id
}

func (c *Context) AttachShader(program, shader uint32) {
	if p := c.programs[program]; p != nil {
		p.attached = append(p.attached, shader)
	}
}

func (c *Context) DetachShader(program, shader uint32) {
	p := c.programs[program]
	if p == nil {
		return
	}
	for i, id := range p.attached {
		if id == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
}

// LinkProgram succeeds when exactly one compiled vertex stage and one
// compiled fragment stage are attached.
func (c *Context) LinkProgram(program uint32) {
	p := c.programs[program]
	if p == nil {
		return
	}
	p.linked, p.valid, p.log = false, false, ""

	counts := make(map[graphics.Stage]int)
	var problems []string
	for _, id := range p.attached {
		sh := c.shaders[id]
		switch {
		case sh == nil:
			problems = append(problems, fmt.Sprintf("error: shader %d does not exist", id))
		case !sh.compiled:
			problems = append(problems, fmt.Sprintf("error: %s shader %d is not compiled", sh.stage, id))
		default:
			counts[sh.stage]++
		}
	}
	for _, stage := range []graphics.Stage{graphics.StageVertex, graphics.StageFragment} {
		if n := counts[stage]; n != 1 {
			problems = append(problems, fmt.Sprintf("error: program needs one %s stage, has %d", stage, n))
		}
	}
	if len(problems) > 0 {
		p.log = strings.Join(problems, "\n") + "\n"
		return
	}
	p.linked = true
}

func (c *Context) ValidateProgram(program uint32) {
	if p := c.programs[program]; p != nil {
		p.valid = p.linked
	}
}

func (c *Context) GetProgramiv(program uint32, param graphics.Param) int32 {
	p := c.programs[program]
	if p == nil {
		return graphics.False
	}
	switch param {
	case graphics.LinkStatus:
		return boolean(p.linked)
	case graphics.ValidateStatus:
		return boolean(p.valid)
	case graphics.InfoLogLength:
		return logLength(p.log)
	}
	return graphics.False
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	if p := c.programs[program]; p != nil {
		return p.log
	}
	return ""
}

func (c *Context) DeleteProgram(program uint32) {
	delete(c.programs, program)
	if c.program == program {
		c.program = 0
	}
}

func (c *Context) UseProgram(program uint32) {
	c.program = program
}

// GetUniformLocation hands out a stable location per program and name.
func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	if c.programs[program] == nil || name == "" {
		return -1
	}
	return int32(program)<<16 | int32(hashName(name)&0xFFFF)
}

func hashName(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func (c *Context) setUniform(location int32, v ...float32) {
	if location < 0 {
		return
	}
	c.uniforms[location] = v
}

func (c *Context) Uniform1f(location int32, v float32) {
	c.setUniform(location, v)
}

func (c *Context) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	c.setUniform(location, v0, v1, v2, v3)
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, m [16]float32) {
	if transpose {
		for r := 0; r < 4; r++ {
			for col := r + 1; col < 4; col++ {
				m[r*4+col], m[col*4+r] = m[col*4+r], m[r*4+col]
			}
		}
	}
	c.setUniform(location, m[:]...)
}

func (c *Context) GenVertexArray() uint32 {
	id := c.id()
	c.objects[id] = true
	return id
}

func (c *Context) BindVertexArray(vao uint32) {
	c.vao = vao
}

func (c *Context) DeleteVertexArray(vao uint32) {
	delete(c.objects, vao)
}

func (c *Context) GenBuffer() uint32 {
	id := c.id()
	c.objects[id] = true
	return id
}

// Buffer contents and attribute layout are not needed to record draws.

func (c *Context) BindBuffer(graphics.BufferTarget, uint32) {}

func (c *Context) BufferData(graphics.BufferTarget, []float32, graphics.BufferUsage) {}

func (c *Context) VertexAttribPointer(uint32, int32, int32, int) {}

func (c *Context) EnableVertexAttribArray(uint32) {}

func (c *Context) DeleteBuffer(buffer uint32) {
	delete(c.objects, buffer)
}

func (c *Context) DrawArrays(mode graphics.Primitive, first, count int32) {
	c.commands = append(c.commands, Command{
		Op:      OpDrawArrays,
		Program: c.program,
		VAO:     c.vao,
		Mode:    mode,
		First:   first,
		Count:   count,
	})
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask graphics.ClearMask) {
	if mask&graphics.ColorBufferBit == 0 {
		return
	}
	c.commands = append(c.commands, Command{Op: OpClear, Color: c.clearColor})
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.viewport = [4]int32{x, y, width, height}
}

// ViewportRect returns the last viewport set as x, y, width, height.
func (c *Context) ViewportRect() [4]int32 {
	return c.viewport
}

func (c *Context) GetString(name graphics.StringName) string {
	switch name {
	case graphics.Vendor:
		return "gogpu"
	case graphics.Renderer:
		return "gldraw headless"
	case graphics.Version:
		return "3.3 headless"
	case graphics.ShadingLanguageVersion:
		return "WGSL (naga)"
	}
	return ""
}

func boolean(b bool) int32 {
	if b {
		return graphics.True
	}
	return graphics.False
}

func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log)) + 1
}
