package graphics

// Stage identifies a shader stage. Values match the OpenGL enums so drivers
// backed by GL can pass them through unchanged.
type Stage uint32

const (
	StageFragment Stage = 0x8B30
	StageVertex   Stage = 0x8B31
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Param selects an object parameter for GetShaderiv and GetProgramiv.
type Param uint32

const (
	CompileStatus  Param = 0x8B81
	LinkStatus     Param = 0x8B82
	ValidateStatus Param = 0x8B83
	InfoLogLength  Param = 0x8B84
)

// Boolean values reported by status queries.
const (
	False int32 = 0
	True  int32 = 1
)

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const ArrayBuffer BufferTarget = 0x8892

// BufferUsage hints how buffer contents will be accessed.
type BufferUsage uint32

const (
	StaticDraw  BufferUsage = 0x88E4
	DynamicDraw BufferUsage = 0x88E8
)

// Primitive is the topology used by DrawArrays.
type Primitive uint32

const (
	Points        Primitive = 0x0000
	Lines         Primitive = 0x0001
	LineLoop      Primitive = 0x0002
	Triangles     Primitive = 0x0004
	TriangleStrip Primitive = 0x0005
	TriangleFan   Primitive = 0x0006
)

// ClearMask selects the buffers reset by Clear.
type ClearMask uint32

const (
	DepthBufferBit ClearMask = 0x0100
	ColorBufferBit ClearMask = 0x4000
)

// StringName selects the driver string returned by GetString.
type StringName uint32

const (
	Vendor                 StringName = 0x1F00
	Renderer               StringName = 0x1F01
	Version                StringName = 0x1F02
	ShadingLanguageVersion StringName = 0x8B8C
)

// Context is the graphics capability set consumed by gldraw and by shapes.
//
// The methods mirror the immediate-mode OpenGL calls of the same name.
// Object handles are plain uint32 values; zero is never a valid handle.
// A Context is bound to the thread that owns the window and is not safe for
// concurrent use.
//
// Drivers that hold releasable resources should also implement io.Closer;
// [Shared.Release] calls Close when the last reference is dropped.
type Context interface {
	// Shader and program objects.

	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, param Param) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program uint32, param Param) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// Uniforms. A location of -1 is silently ignored.

	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, transpose bool, m [16]float32)

	// Vertex state. Attribute pointers always describe float32 data;
	// stride and offset are in bytes.

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferData(target BufferTarget, data []float32, usage BufferUsage)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	// Drawing.

	DrawArrays(mode Primitive, first, count int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int32)

	GetString(name StringName) string
}
