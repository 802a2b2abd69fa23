// Package gldraw is a small harness for writing OpenGL programs as a set of
// shapes driven by a fixed render loop.
//
// # Overview
//
// A program builds a [Shapes] collection, opens a [Loop] on a window and
// calls [Loop.Run]. Each iteration of the loop polls window events, advances
// every shape with the elapsed time, forwards the queued input events, draws
// every shape and presents the frame:
//
//	scene := &gldraw.Shapes{}
//	scene.Add(shapes.NewBackground(0.1, 0.1, 0.1, 1))
//	scene.Add(myShape)
//
//	loop, err := gldraw.Open(gldraw.DefaultConfig().WithTitle("demo"), scene)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loop.Close()
//	if err := loop.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Shapes
//
// A [Shape] owns its graphics objects. Init is called once with a reference
// to the shared graphics context, then Update, Input and Draw are called
// every frame in insertion order. The first error returned by any shape
// stops the loop and is returned from Run unchanged.
//
// # Drivers
//
// Windows come from the platform registry and graphics contexts from the
// graphics registry. Drivers register themselves when imported:
//
//	import (
//	    _ "github.com/gogpu/gldraw/backend/opengl"
//	    _ "github.com/gogpu/gldraw/platform/glfw"
//	)
//
// The headless backend (backend/headless) needs no GPU and is used for
// tests.
//
// # Threading
//
// Everything runs on the thread that opened the window. The glfw driver
// locks the main goroutine to the main OS thread when imported.
package gldraw
