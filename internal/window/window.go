//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/marcher3d/internal/logging"
	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

// Run opens a desktop window showing the ASCII frame and blocks until it closes.
func Run(v *marcher3d.Viewer) error {
	g := &game{v: v, chars: make([]rune, 0, 8)}
	g.redraw()
	ebiten.SetWindowTitle("marcher3d")
	ebiten.SetWindowSize(screenSize(v))
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	v     *marcher3d.Viewer
	text  string
	chars []rune
}

func (g *game) redraw() {
	g.text = screenText(g.v)
}

func (g *game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	cmds := commandsFor(g.chars, inpututil.IsKeyJustPressed(ebiten.KeyEscape))
	if len(cmds) == 0 {
		return nil
	}
	for _, cmd := range cmds {
		if !g.v.Apply(cmd) {
			logging.L().Debug("window closed by quit command")
			return ebiten.Termination
		}
	}
	g.redraw()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.text)
}

func (g *game) Layout(int, int) (int, int) { return screenSize(g.v) }
