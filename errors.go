package surfaces

import (
	"errors"
	"fmt"
)

var (
	// ErrNoShaders is returned when a program is linked from zero stages.
	ErrNoShaders = errors.New("no shaders to link")

	// ErrSingularMatrix is returned when a view transform has no inverse.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrEmptyImage is returned when a texture upload has no pixels.
	ErrEmptyImage = errors.New("empty image")
)

// CompileError reports a shader stage rejected by the driver.
type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, e.Log)
}

// LinkError reports a program the driver failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// diagnostic substitutes a placeholder for an empty driver log.
func diagnostic(log, fallback string) string {
	if log == "" {
		return fallback
	}
	return log
}
