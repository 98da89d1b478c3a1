package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Befador/arcade/internal/apperror"
)

func TestScreen_ReadLine(t *testing.T) {
	t.Run("Trims the line and echoes the prompt", func(t *testing.T) {
		out := &bytes.Buffer{}
		screen := New(strings.NewReader("  hello \n"), out)

		line, err := screen.ReadLine("> ")

		require.NoError(t, err)
		assert.Equal(t, "hello", line)
		assert.Equal(t, "> ", out.String())
	})

	t.Run("Typing esc quits to the menu", func(t *testing.T) {
		screen := New(strings.NewReader("ESC\n"), &bytes.Buffer{})

		_, err := screen.ReadLine("> ")

		assert.ErrorIs(t, err, apperror.ErrQuitToMenu)
	})

	t.Run("End of input quits to the menu", func(t *testing.T) {
		screen := New(strings.NewReader(""), &bytes.Buffer{})

		_, err := screen.ReadLine("> ")

		assert.ErrorIs(t, err, apperror.ErrQuitToMenu)
	})
}

func TestScreen_Confirm(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"y is yes", "y\n", true},
		{"o is yes", "o\n", true},
		{"Yes in full", "YES\n", true},
		{"n is no", "n\n", false},
		{"Garbage is re-asked", "maybe\nn\n", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			screen := New(strings.NewReader(tc.input), &bytes.Buffer{})

			got, err := screen.Confirm("sure? ")

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScreen_Center(t *testing.T) {
	// Given: a buffer-backed screen, which falls back to the default width
	out := &bytes.Buffer{}
	screen := New(strings.NewReader(""), out)

	// When: centering a ten-rune line
	screen.Center("ooooohhhhh")

	// Then: it is padded to the middle of an 80-column screen
	assert.Equal(t, strings.Repeat(" ", 35)+"ooooohhhhh\n", out.String())
}

func TestVisibleLen(t *testing.T) {
	plain := "snake"
	colored := Title.Sprint("snake")

	assert.Equal(t, 5, visibleLen(plain))
	assert.Equal(t, 5, visibleLen(colored))
}
