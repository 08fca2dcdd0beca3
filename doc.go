/*
Package interact provides a small set of frame-driven widgets for Go render
loops: a text field, a button, a checkbox and a dropdown.

# Overview

Each widget owns its visual state and exposes two calls made once per frame by
the host loop:

	Update(in *InputState)  // consume this frame's input
	Draw(c Canvas)          // emit draw calls, never mutating the widget

There is no widget tree, event bus or layout engine. Input arrives as an
explicit InputState snapshot assembled by the host (or a backend adapter) at
the start of each frame, so widgets are testable without a window.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600, nil)
	adapter := opengl.NewInputAdapter(window)
	ui := interact.New(renderer)

	name := interact.NewTextField(20, 20, 240, 32, 16)
	name.SetPlaceholder("name")
	ok := interact.NewButton(280, 20, 100, 32, "OK")
	ui.Add(name, ok)

	for !window.ShouldClose() {
	    in := adapter.BeginFrame()
	    glfw.PollEvents()

	    ui.Update(in)
	    if ok.Clicked() {
	        fmt.Println("hello,", name.Text())
	    }
	    _ = ui.Draw()
	    window.SwapBuffers()
	}

# Backends

The Canvas interface is the only thing widgets draw through. Three backends
ship with the module:

	backend/opengl  DrawList renderer on go-gl plus a GLFW input adapter
	backend/raylib  Canvas and input polling on raylib-go
	backend/ebiten  Canvas, input polling and an ebiten.Game adapter

DrawList implements Canvas by recording vertex and index buffers; any GPU
renderer that can draw indexed triangles with a clip rectangle and an
optional alpha texture can consume it.

# Text Field

Keys handled while a field is active:

	Printable        Insert at the cursor (one character per frame)
	Backspace        Delete before the cursor; held, deletes once more after 0.5s
	Left / Right     Move the cursor one character
	Home / End       Jump to start / end

A primary press inside a field activates it; a press anywhere else
deactivates it. The caret blinks with a one second period, visible for the
first half.

# Themes

Styles can be loaded from YAML:

	name: night
	base: dark
	button:
	  base: button_primary
	textfield:
	  colors:
	    background: "#1E1E1E"

See LoadTheme for the full format.
*/
package interact
