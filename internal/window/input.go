package window

import (
	"strings"

	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

// commandsFor maps the characters typed since the last tick to viewer commands.
// Characters that name no command are dropped; escape appends a quit.
func commandsFor(chars []rune, escape bool) []marcher3d.Command {
	var out []marcher3d.Command
	for _, r := range chars {
		if cmd := marcher3d.ParseCommand(string(r)); cmd != marcher3d.CmdNone {
			out = append(out, cmd)
		}
	}
	if escape {
		out = append(out, marcher3d.CmdQuit)
	}
	return out
}

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	cellW = 6
	cellH = 16
)

// screenText is what the window prints: the frame rows and the status line.
func screenText(v *marcher3d.Viewer) string {
	return strings.TrimSuffix(v.Screen(), "\n")
}

// screenSize is the logical window size holding Width columns and Height+1 rows.
func screenSize(v *marcher3d.Viewer) (int, int) {
	return v.Width * cellW, (v.Height + 1) * cellH
}
