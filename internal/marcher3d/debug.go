package marcher3d

import (
	"fmt"
	"sync"

	"github.com/lukaszgryglicki/marcher3d/internal/logging"
)

// DebugLog emits a formatted debug line through the global logger when Debug is set.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	logging.L().Debug(fmt.Sprintf(format, args...), logging.String("component", "marcher3d"))
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		DebugLog(format, args...)
	})
}
