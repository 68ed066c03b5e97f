package ui

import (
	"fmt"
	"strings"

	"github.com/unoline/uno/card"
	"github.com/unoline/uno/card/color"
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
}

// FormatCard paints a card descriptor for the terminal.
func FormatCard(m card.Memento) string {
	c, err := card.FromMemento(m)
	if err != nil {
		return m.Type
	}
	return c.String()
}

// FormatHand lists a hand with the indices the engine expects.
func FormatHand(hand []card.Memento) string {
	labels := make([]string, len(hand))
	for i, m := range hand {
		labels[i] = fmt.Sprintf("%d:%s", i, FormatCard(m))
	}
	return strings.Join(labels, " ")
}
