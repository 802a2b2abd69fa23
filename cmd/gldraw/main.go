// Command gldraw opens a window and draws a rotating triangle.
//
// Space pauses the rotation, R resets it and Escape quits. With -reload the
// shader file is rebuilt whenever it is saved.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gldraw"
	_ "github.com/gogpu/gldraw/backend/headless"
	_ "github.com/gogpu/gldraw/backend/opengl"
	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/platform"
	_ "github.com/gogpu/gldraw/platform/glfw"
	"github.com/gogpu/gldraw/shapes"
)

// quitOnEscape closes the window when Escape is pressed.
type quitOnEscape struct {
	gldraw.BaseShape
	win platform.Window
}

func (q *quitOnEscape) Init(*graphics.Shared) error { return nil }

func (q *quitOnEscape) Input(ev platform.Event) error {
	if k, ok := ev.(platform.KeyEvent); ok && k.Key == platform.KeyEscape && k.Action == platform.Press {
		q.win.SetShouldClose(true)
	}
	return nil
}

func (q *quitOnEscape) Draw() error { return nil }

func main() {
	var (
		configPath = flag.String("config", "", "YAML or TOML config file")
		shaderPath = flag.String("shader", "cmd/gldraw/shaders/triangle.shader", "shader file")
		debug      = flag.Bool("debug", false, "log at debug level")
		reload     = flag.Bool("reload", false, "rebuild the shader when the file changes")
	)
	flag.Parse()

	cfg := gldraw.DefaultConfig().WithTitle("gldraw")
	if *configPath != "" {
		var err error
		cfg, err = gldraw.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		level = slog.LevelDebug
	}
	gldraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tri := shapes.NewTriangle(*shaderPath)
	tri.Reload = *reload
	quit := &quitOnEscape{}

	scene := &gldraw.Shapes{}
	scene.Add(shapes.NewBackground(0.1, 0.1, 0.12, 1))
	scene.Add(tri)
	scene.Add(quit)

	loop, err := gldraw.Open(cfg, scene)
	if err != nil {
		log.Fatalf("gldraw: %v", err)
	}
	quit.win = loop.Window()

	runErr := loop.Run()
	if err := loop.Close(); err != nil {
		gldraw.Logger().Warn("gldraw: close", "err", err)
	}
	if runErr != nil {
		log.Fatalf("gldraw: %v", runErr)
	}
}
