package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lukaszgryglicki/marcher3d/internal/logging"
	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	keyCtrlC    = 0x03
	keyEscape   = 0x1b
)

// Options configures the terminal front end.
type Options struct {
	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
	// Raw reads single key presses instead of lines when In is a terminal.
	Raw bool
	// Fit resizes the viewer to the terminal when Out is a terminal.
	Fit bool
}

// Run draws frames and applies commands until the user quits, input ends or ctx is cancelled.
func Run(ctx context.Context, v *marcher3d.Viewer, opts Options) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	log := logging.LoggerFromContext(ctx).With(logging.String("frontend", "terminal"))
	// stops the reader goroutine once Run returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	newline := "\n"
	if opts.Raw {
		if f, ok := opts.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			state, err := term.MakeRaw(int(f.Fd()))
			if err != nil {
				return fmt.Errorf("raw mode: %w", err)
			}
			defer func() { _ = term.Restore(int(f.Fd()), state) }()
			newline = "\r\n"
		} else {
			log.Warn("raw input requested but stdin is not a terminal, reading lines")
			opts.Raw = false
		}
	}
	if opts.Fit {
		fit(v, opts.Out)
	}

	cmds := make(chan marcher3d.Command)
	readErr := make(chan error, 1)
	go func() {
		defer close(cmds)
		var err error
		if opts.Raw {
			err = readKeys(ctx, opts.In, cmds)
		} else {
			err = readLines(ctx, opts.In, cmds)
		}
		readErr <- err
	}()

	if _, err := io.WriteString(opts.Out, clearScreen); err != nil {
		return err
	}
	for {
		f := v.Frame()
		var sb strings.Builder
		sb.WriteString(cursorHome)
		for y := 0; y < f.Height; y++ {
			sb.WriteString(f.Row(y))
			sb.WriteString(newline)
		}
		sb.WriteString(v.Status())
		sb.WriteString(newline)
		if _, err := io.WriteString(opts.Out, sb.String()); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-cmds:
			if !ok {
				if err := <-readErr; err != nil {
					return err
				}
				return nil
			}
			if !v.Apply(cmd) {
				log.Debug("quit requested")
				return nil
			}
		}
	}
}

// readLines sends one command per input line, unknown lines still trigger a redraw.
func readLines(ctx context.Context, in io.Reader, out chan<- marcher3d.Command) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case out <- marcher3d.ParseCommand(sc.Text()):
		case <-ctx.Done():
			return nil
		}
	}
	return sc.Err()
}

// readKeys sends one command per key press; Ctrl-C and Escape quit.
func readKeys(ctx context.Context, in io.Reader, out chan<- marcher3d.Command) error {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		cmd := marcher3d.ParseCommand(string(buf[:1]))
		if buf[0] == keyCtrlC || buf[0] == keyEscape {
			cmd = marcher3d.CmdQuit
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return nil
		}
		if cmd == marcher3d.CmdQuit {
			return nil
		}
	}
}

// fit shrinks the viewer to the terminal, keeping a line for the status.
func fit(v *marcher3d.Viewer, out io.Writer) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 2 {
		return
	}
	v.Width, v.Height = w, h-2
}
