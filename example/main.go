// Example raymarches an animated implicit surface on a full-screen quad.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag with the left mouse button to orbit, scroll to zoom.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	surfaces "github.com/wpchop/implicit-surfaces"
	"github.com/wpchop/implicit-surfaces/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "implicit surfaces"
)

const vertexShaderSource = `
#version 410 core
in vec4 vs_Pos;

void main() {
    gl_Position = vs_Pos;
}
`

const fragmentShaderSource = `
#version 410 core
uniform mat4 u_View;
uniform vec2 u_Screen;
uniform vec3 u_Up;
uniform vec3 u_Eye;
uniform float u_Time;
uniform sampler2D u_Texture;

out vec4 out_Col;

float sceneSDF(vec3 p) {
    float r = 1.0 + 0.1 * sin(u_Time * 2.0 + p.y * 4.0);
    float sphere = length(p) - r;
    float floorPlane = p.y + 1.5;
    return min(sphere, floorPlane);
}

vec3 normalAt(vec3 p) {
    vec2 e = vec2(0.001, 0.0);
    return normalize(vec3(
        sceneSDF(p + e.xyy) - sceneSDF(p - e.xyy),
        sceneSDF(p + e.yxy) - sceneSDF(p - e.yxy),
        sceneSDF(p + e.yyx) - sceneSDF(p - e.yyx)));
}

void main() {
    vec2 ndc = (gl_FragCoord.xy / u_Screen) * 2.0 - 1.0;
    ndc.x *= u_Screen.x / u_Screen.y;

    vec3 dir = normalize((u_View * vec4(ndc, -1.5, 0.0)).xyz);
    vec3 p = u_Eye;
    float t = 0.0;
    for (int i = 0; i < 128; i++) {
        float d = sceneSDF(p);
        if (d < 0.001 || t > 50.0) {
            break;
        }
        t += d;
        p = u_Eye + dir * t;
    }

    if (t > 50.0) {
        out_Col = vec4(0.12, 0.12, 0.14, 1.0);
        return;
    }

    vec3 n = normalAt(p);
    float light = clamp(dot(n, normalize(vec3(0.5, 1.0, 0.3) + u_Up * 0.1)), 0.1, 1.0);
    vec3 base = p.y < -1.49 ? texture(u_Texture, fract(p.xz * 0.25)).rgb : vec3(0.9, 0.4, 0.3);
    out_Col = vec4(base * light, 1.0);
}
`

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := surfaces.NewContext(opengl.NewDriver(), surfaces.WithLogger(logger))

	prog, err := buildProgram(ctx)
	if err != nil {
		return err
	}
	defer prog.Delete()

	if err := prog.BindTexture(checkerboard(64, 8)); err != nil {
		return fmt.Errorf("floor texture: %w", err)
	}

	quad := opengl.NewQuad()
	defer quad.Delete()

	camera := surfaces.NewCamera(mgl32.Vec3{0, 1, 5}, mgl32.Vec3{})
	opengl.NewCameraController(window, camera)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		prog.SetViewportSize(float32(w), float32(h))
		prog.SetElapsedTime(float32(glfw.GetTime()))
		if err := camera.Apply(prog); err != nil && !errors.Is(err, surfaces.ErrSingularMatrix) {
			return err
		}
		prog.Draw(quad)

		window.SwapBuffers()
	}

	return nil
}

func buildProgram(ctx *surfaces.Context) (*surfaces.Program, error) {
	vs, err := surfaces.NewShader(ctx, surfaces.VertexStage, vertexShaderSource)
	if err != nil {
		return nil, err
	}
	defer vs.Delete()

	fs, err := surfaces.NewShader(ctx, surfaces.FragmentStage, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	defer fs.Delete()

	prog, err := surfaces.NewProgram(ctx, []*surfaces.Shader{vs, fs})
	if err != nil {
		return nil, fmt.Errorf("raymarch program: %w", err)
	}
	return prog, nil
}

// checkerboard returns a size x size image of cell-sized squares.
func checkerboard(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
