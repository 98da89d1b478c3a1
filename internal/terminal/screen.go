package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Befador/arcade/internal/apperror"
)

// Shared styles, matching the retro palette of the arcade.
var (
	Title   = color.New(color.FgGreen, color.Bold)
	Accent  = color.New(color.FgCyan)
	Warn    = color.New(color.FgYellow)
	Danger  = color.New(color.FgRed)
	Strong  = color.New(color.Bold)
	Magenta = color.New(color.FgMagenta)
)

const defaultWidth = 80

// Screen wraps the terminal the arcade draws on. Input and output are
// injected so game loops can run against buffers in tests.
type Screen struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Screen {
	return &Screen{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (that *Screen) Out() io.Writer {
	return that.out
}

// Clear - wipes the screen and moves the cursor home.
func (that *Screen) Clear() {
	fmt.Fprint(that.out, "\033[H\033[2J")
}

// Width returns the terminal width, or a sane default when the output is not
// a terminal (tests, pipes).
func (that *Screen) Width() int {
	file, ok := that.out.(*os.File)
	if !ok {
		return defaultWidth
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}

func (that *Screen) Print(args ...any) {
	fmt.Fprint(that.out, args...)
}

func (that *Screen) Println(args ...any) {
	fmt.Fprintln(that.out, args...)
}

func (that *Screen) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

// Center prints a line centered for the current terminal width.
func (that *Screen) Center(line string) {
	width := that.Width()

	pad := (width - visibleLen(line)) / 2
	if pad < 0 {
		pad = 0
	}

	fmt.Fprintln(that.out, strings.Repeat(" ", pad)+line)
}

// ReadLine prompts and reads one trimmed line. Typing "esc" (or a raw ESC
// byte) anywhere returns apperror.ErrQuitToMenu.
func (that *Screen) ReadLine(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	line, err := that.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return "", apperror.ErrQuitToMenu
		}
		if err != io.EOF {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "esc") || line == "\x1b" {
		return "", apperror.ErrQuitToMenu
	}

	return line, nil
}

// Confirm asks a yes/no question; "o" counts as yes for the French games.
func (that *Screen) Confirm(prompt string) (bool, error) {
	for {
		answer, err := that.ReadLine(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "o", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// WaitEnter blocks until the player presses enter.
func (that *Screen) WaitEnter(message string) error {
	_, err := that.ReadLine(message)
	if err != nil {
		return err
	}
	return nil
}

// Pause sleeps so the player sees transition text before the next redraw.
func (that *Screen) Pause(d time.Duration) {
	time.Sleep(d)
}

// visibleLen is the printable width of a line, ignoring ANSI color codes.
func visibleLen(line string) int {
	length := 0
	inEscape := false

	for _, r := range line {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			length++
		}
	}

	return length
}
