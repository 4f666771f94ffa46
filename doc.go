/*
Package avatar provides a circular avatar widget: a source image shaded into a
circle, with an optional filled backdrop and border ring, laid out inside a
padded viewport.

# Overview

The package is split into a pure geometry core and a thin widget around it.
ComputeLayout fits the image circle and the border ring into the content
rectangle of a Viewport. Widget owns configuration, the source image and the
cached render descriptors (Paints), recomputes layout whenever the host reports
a size change, and draws through the Canvas interface. Host adapts a Widget to
a Renderer the way a toolkit's base view would.

Two render backends are provided:

  - backend/opengl renders a DrawList with OpenGL 4.1 (circles are tessellated
    into triangle fans and rings, images become clamped RGBA textures).
  - backend/software rasterizes into a gg pixmap and can write PNG files.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(256, 256)
	w := avatar.New(
	    avatar.WithImage(img),
	    avatar.WithBorderWidth(6),
	    avatar.WithBorderColor(avatar.ColorWhite),
	)
	host := avatar.NewHost(renderer, w,
	    avatar.WithPadding(avatar.Padding{Left: 8, Top: 8, Right: 8, Bottom: 8}),
	    avatar.WithTextureResolver(renderer.TextureID),
	)
	host.Resize(256, 256)

	// Render loop
	for !window.ShouldClose() {
	    if host.NeedsRedraw() {
	        host.Frame()
	        window.SwapBuffers()
	    }
	}

# Geometry

Both circles share the center of the content rectangle and are inscribed in
the largest square that fits it (side = min(contentWidth, contentHeight)):

	borderRadius = side/2 - borderWidth/2    // stroke centerline
	imageRadius  = side/2 - borderWidth      // border outside the image
	imageRadius  = side/2                    // border_overlay = true

Radii clamp to zero when padding leaves no room.

# Lifecycle

A Widget starts Uninitialized. Size changes and other setup requests made
before Init are remembered (the latest one wins) and run when Init is called.
A setup with a zero viewport does nothing; a setup without a source image only
requests a redraw.

# Styling

Four options are recognized: border_width, border_color, border_overlay and
fill_color. They can be set with Options, parsed from string attributes with
ParseAttributes, or loaded from a TOML StyleSheet. Colors are hex strings in
#RGB, #RGBA, #RRGGBB or #RRGGBBAA form.

# Threading

Nothing here is safe for concurrent use. Call everything from the UI thread.
*/
package avatar
