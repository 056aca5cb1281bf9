//go:build !cgo

package window

import (
	"errors"

	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

// ErrUnavailable is returned when the binary was built without cgo.
var ErrUnavailable = errors.New("window mode requires a cgo build")

// Run reports that no window backend is compiled in.
func Run(*marcher3d.Viewer) error { return ErrUnavailable }
