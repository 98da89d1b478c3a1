package terminal

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyEnter
	KeyRune
)

// KeyEvent is one decoded keypress from the raw-mode reader.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeyReader puts the terminal into raw mode and decodes keypresses onto a
// channel, the Go rendition of a curses nodelay input loop. Close restores
// the terminal state.
type KeyReader struct {
	fd     int
	state  *term.State
	events chan KeyEvent
	cancel context.CancelFunc
}

const pollInterval = 50 * time.Millisecond

// OpenKeys switches stdin to raw mode and starts the reader goroutine. The
// goroutine polls with a read deadline so it exits promptly on Close without
// swallowing input meant for the next prompt.
func OpenKeys(ctx context.Context) (*KeyReader, error) {
	fd := int(os.Stdin.Fd())

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)

	reader := &KeyReader{
		fd:     fd,
		state:  state,
		events: make(chan KeyEvent, 8),
		cancel: cancel,
	}

	go reader.loop(ctx)

	return reader, nil
}

func (that *KeyReader) Events() <-chan KeyEvent {
	return that.events
}

// Close stops the reader and restores cooked mode.
func (that *KeyReader) Close() error {
	that.cancel()

	if err := term.Restore(that.fd, that.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}

	return nil
}

func (that *KeyReader) loop(ctx context.Context) {
	defer close(that.events)

	buf := make([]byte, 8)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_ = os.Stdin.SetReadDeadline(time.Now().Add(pollInterval))

		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		event, ok := decodeKey(buf[:n])
		if !ok {
			continue
		}

		select {
		case that.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

// decodeKey turns a raw byte chunk into a key event. Arrow keys arrive as
// ESC [ A..D sequences; a lone ESC byte is the escape key itself.
func decodeKey(chunk []byte) (KeyEvent, bool) {
	if len(chunk) >= 3 && chunk[0] == 0x1b && chunk[1] == '[' {
		switch chunk[2] {
		case 'A':
			return KeyEvent{Key: KeyUp}, true
		case 'B':
			return KeyEvent{Key: KeyDown}, true
		case 'C':
			return KeyEvent{Key: KeyRight}, true
		case 'D':
			return KeyEvent{Key: KeyLeft}, true
		}
		return KeyEvent{}, false
	}

	switch chunk[0] {
	case 0x1b:
		return KeyEvent{Key: KeyEsc}, true
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, true
	case 0x03: // ctrl-c in raw mode
		return KeyEvent{Key: KeyEsc}, true
	}

	return KeyEvent{Key: KeyRune, Rune: rune(chunk[0])}, true
}
