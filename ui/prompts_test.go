package ui

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unoline/uno/card/color"
)

// script feeds the prompts canned lines and discards their output.
func script(t *testing.T, lines ...string) {
	t.Helper()
	previousInput := input
	input = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	t.Cleanup(func() { input = previousInput })

	previousStdout := color.Stdout
	color.Stdout = io.Discard
	t.Cleanup(func() { color.Stdout = previousStdout })
}

func TestPromptString(t *testing.T) {
	script(t, "", "   ", "hello")
	require.Equal(t, "hello", PromptString("say something"))
}

func TestPromptIntegerInRange(t *testing.T) {
	t.Run("accepts_a_number_inside_the_range", func(t *testing.T) {
		script(t, "3")
		require.Equal(t, 3, PromptIntegerInRange(0, 4, "pick a card"))
	})

	t.Run("keeps_asking_until_the_input_is_valid", func(t *testing.T) {
		script(t, "7", "banana", "-1", "0")
		require.Equal(t, 0, PromptIntegerInRange(0, 4, "pick a card"))
	})
}

func TestPromptColor(t *testing.T) {
	script(t, "purple", "ReD")
	require.Equal(t, color.Red, PromptColor())
}
