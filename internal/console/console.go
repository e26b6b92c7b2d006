// Package console implements the game's terminal collaborator: masked and
// plain line input, screen clearing, and colored rendering of the board.
//
// Color and screen control are only emitted when the output is a terminal
// and NO_COLOR is unset; on pipes the same text is written without escapes.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/varshneyabhi/wordle/internal/game"
)

const clearScreen = "\033[H\033[2J"

// Terminal reads player input and renders the game.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int  // stdin descriptor for masked reads, -1 when not a terminal
	styled bool // emit color and screen control
}

// Options controls how a Terminal is constructed.
type Options struct {
	NoColor bool
}

// New builds a Terminal over arbitrary streams. Masked input and styling are
// enabled only when in and out are terminals.
func New(in io.Reader, out io.Writer, opts Options) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
	}
	if f, ok := out.(*os.File); ok && !opts.NoColor && isTerminal(f) {
		t.out = colorable.NewColorable(f)
		t.styled = true
	}
	return t
}

// NewStd builds a Terminal over the process's stdin and stdout.
func NewStd(opts Options) *Terminal {
	return New(os.Stdin, os.Stdout, opts)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReadSecret prints prompt and reads one line without echo when stdin is a
// terminal. On other inputs the line is read as-is.
func (t *Terminal) ReadSecret(prompt string) (string, error) {
	if t.fd < 0 {
		return t.ReadLine(prompt)
	}
	fmt.Fprint(t.out, prompt)
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLine prints prompt and reads one line, without the trailing newline.
// A final line without a newline is returned; io.EOF only when nothing was read.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear wipes the screen on terminals.
func (t *Terminal) Clear() {
	if t.styled {
		fmt.Fprint(t.out, clearScreen)
	}
}

// Alert prints msg in red.
func (t *Terminal) Alert(msg string) {
	fmt.Fprintln(t.out, t.paint(color.Red, msg))
}

// Notice prints an informational line.
func (t *Terminal) Notice(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Pause waits for Enter.
func (t *Terminal) Pause() error {
	_, err := t.ReadLine("Press Enter to continue...")
	return err
}

// paint wraps s in c when styling is enabled.
func (t *Terminal) paint(c color.Color, s string) string {
	if !t.styled {
		return s
	}
	return c.Sprint(s)
}

var _ game.Terminal = (*Terminal)(nil)
