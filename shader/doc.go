// Package shader parses two-stage shader files and builds linked programs.
//
// # File format
//
// A shader file holds a vertex and a fragment section. Each section starts
// at a line containing the marker text and runs until the next marker:
//
//	#shader vertex
//	#version 330 core
//	layout(location = 0) in vec2 a_position;
//	void main() { gl_Position = vec4(a_position, 0.0, 1.0); }
//
//	#shader fragment
//	#version 330 core
//	out vec4 color;
//	void main() { color = vec4(1.0); }
//
// Section bodies are passed to the driver unchanged, so the shading language
// is whatever the active graphics backend compiles: GLSL for OpenGL, WGSL for
// the headless backend. Nothing may precede the first marker.
//
// # Building
//
// [Build] parses a file, compiles both stages and links them:
//
//	prog, err := shader.Build(gfx, "shaders/triangle.shader")
//	if err != nil {
//	    var ce *shader.CompileError
//	    if errors.As(err, &ce) {
//	        log.Printf("%s stage:\n%s", ce.Stage, ce.Log)
//	    }
//	    return err
//	}
//	defer prog.Delete(gfx)
//
// Every stage object created along the way is deleted before Build returns,
// whether it succeeds or not.
package shader
