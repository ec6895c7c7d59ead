/*
Package surfaces wraps a graphics driver's shader-program object for a
screen-space raymarcher: it compiles stages, links them, caches a fixed set
of attribute and uniform locations, and pushes per-frame uniforms before an
indexed draw of a full-screen quad.

# Quick Start

	drv := opengl.NewDriver()
	ctx := surfaces.NewContext(drv, surfaces.WithLogger(slog.Default()))

	vs, err := surfaces.NewShader(ctx, surfaces.VertexStage, vertexSource)
	if err != nil {
	    return err
	}
	fs, err := surfaces.NewShader(ctx, surfaces.FragmentStage, fragmentSource)
	if err != nil {
	    return err
	}
	prog, err := surfaces.NewProgram(ctx, []*surfaces.Shader{vs, fs})
	if err != nil {
	    return err
	}

	quad := opengl.NewQuad()
	for !window.ShouldClose() {
	    prog.SetViewportSize(float32(w), float32(h))
	    prog.SetElapsedTime(float32(glfw.GetTime()))
	    camera.Apply(prog)
	    prog.Draw(quad)
	}

# Slots

Every program resolves these names once, when it is linked:

	vs_Pos     attribute, vec4 position of the quad
	u_View     mat4, inverse of the camera view transform
	u_Screen   vec2, viewport size in pixels
	u_Up       vec3, camera up vector
	u_Eye      vec3, camera position
	u_Time     float, elapsed time
	u_Texture  sampler2D, the program's texture unit

A name the linked source does not declare resolves to an absent Slot and the
matching setter does nothing.

# Binding

Programs bind themselves through their Context, which remembers the last
bound program and skips repeated binds. Code that binds programs through the
native API directly must call Context.Invalidate afterwards.

A Context, its Driver and its programs belong to the thread that owns the
native graphics context.
*/
package surfaces
