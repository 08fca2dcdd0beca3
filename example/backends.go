package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/go-theft-auto/interact"
	ebitenbackend "github.com/go-theft-auto/interact/backend/ebiten"
	"github.com/go-theft-auto/interact/backend/opengl"
	rlbackend "github.com/go-theft-auto/interact/backend/raylib"
)

var clearColor = interact.RGBA(31, 31, 36, 255)

type backendFunc func(opts []interact.UIOption, logger *zap.Logger) error

var backends = map[string]backendFunc{
	"opengl": runOpenGL,
	"raylib": runRaylib,
	"ebiten": runEbiten,
}

func init() {
	// GLFW and raylib must run on the main thread.
	runtime.LockOSThread()
}

func runOpenGL(opts []interact.UIOption, logger *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(width, height, nil)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	ui := interact.New(renderer, opts...)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		ui.Resize(fbWidth, fbHeight)
	})

	adapter := opengl.NewInputAdapter(window)
	scene := newForm(ui, logger)

	r, g, b, a := interact.UnpackRGBA(clearColor)
	for !window.ShouldClose() {
		in := adapter.BeginFrame()
		glfw.PollEvents()

		ui.Update(in)
		scene.update(in)

		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Draw(); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}

func runRaylib(opts []interact.UIOption, logger *zap.Logger) error {
	ui := interact.New(nil, opts...)
	scene := newForm(ui, logger)

	rlbackend.Run(rlbackend.Config{
		Title:      windowTitle,
		Width:      int32(width),
		Height:     int32(height),
		TargetFPS:  60,
		Background: clearColor,
	}, ui, scene.update)
	return nil
}

func runEbiten(opts []interact.UIOption, logger *zap.Logger) error {
	ui := interact.New(nil, opts...)
	scene := newForm(ui, logger)

	game := ebitenbackend.NewGame(ui, width, height, clearColor)
	game.OnFrame = scene.update
	return ebitenbackend.Run(windowTitle, game)
}
