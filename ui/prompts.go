package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/unoline/uno/card/color"
)

var input = bufio.NewReader(os.Stdin)

// PromptString reads one non-empty line.
func PromptString(message string) string {
	for {
		Println(message)
		line, err := input.ReadString('\n')
		if err != nil {
			Println("Invalid text input")
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line
	}
}

func promptInteger(message string) int {
	for {
		var value int
		if _, err := fmt.Sscanf(PromptString(message), "%d", &value); err != nil {
			Println("Invalid number input")
			continue
		}
		return value
	}
}

// PromptIntegerInRange keeps asking until the input falls inside
// [minimum, maximum].
func PromptIntegerInRange(minimum, maximum int, message string) int {
	for {
		value := promptInteger(message)
		if value < minimum || value > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return value
	}
}

// PromptColor asks for one of the four playable colors.
func PromptColor() color.Color {
	message := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Blue, color.Green, color.Red, color.Yellow,
	)
	for {
		chosen, err := color.ByName(PromptString(message))
		if err != nil {
			Printfln("%v", err)
			continue
		}
		return chosen
	}
}
