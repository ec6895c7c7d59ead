package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	surfaces "github.com/wpchop/implicit-surfaces"
)

// Input sensitivity of the camera controller.
const (
	orbitRadiansPerPixel = 0.005
	zoomPerScrollStep    = 0.9
)

// CameraController drives a surfaces.Camera from GLFW input: dragging with
// the left button orbits, scrolling zooms.
type CameraController struct {
	window *glfw.Window
	camera *surfaces.Camera

	dragging     bool
	lastX, lastY float64
}

// NewCameraController installs mouse callbacks on window.
func NewCameraController(window *glfw.Window, camera *surfaces.Camera) *CameraController {
	c := &CameraController{
		window: window,
		camera: camera,
	}

	window.SetMouseButtonCallback(c.mouseButtonCallback)
	window.SetCursorPosCallback(c.cursorPosCallback)
	window.SetScrollCallback(c.scrollCallback)

	return c
}

// Camera returns the controlled camera.
func (c *CameraController) Camera() *surfaces.Camera {
	return c.camera
}

func (c *CameraController) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		c.dragging = true
		c.lastX, c.lastY = w.GetCursorPos()
	case glfw.Release:
		c.dragging = false
	}
}

func (c *CameraController) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !c.dragging {
		return
	}
	dx, dy := xpos-c.lastX, ypos-c.lastY
	c.lastX, c.lastY = xpos, ypos
	c.camera.Orbit(float32(-dx)*orbitRadiansPerPixel, float32(-dy)*orbitRadiansPerPixel)
}

func (c *CameraController) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	switch {
	case yoff > 0:
		c.camera.Zoom(zoomPerScrollStep)
	case yoff < 0:
		c.camera.Zoom(1 / zoomPerScrollStep)
	}
}
