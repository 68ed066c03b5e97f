package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the four card colors. The zero value None marks
// wild cards, which carry no color of their own.
type Color string

const (
	None   Color = ""
	Blue   Color = "BLUE"
	Green  Color = "GREEN"
	Red    Color = "RED"
	Yellow Color = "YELLOW"
)

// All lists the playable colors in canonical deck order.
var All = []Color{Blue, Green, Red, Yellow}

var paints = map[Color]func(string, ...interface{}) string{
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

// Stdout understands the ANSI sequences Paint emits.
var Stdout io.Writer = color.Output

// Valid reports whether c is one of the four playable colors.
func (c Color) Valid() bool {
	_, ok := paints[c]
	return ok
}

// Paint wraps text in the ANSI sequence for c. Text is returned
// unchanged for None.
func (c Color) Paint(text string) string {
	paint, ok := paints[c]
	if !ok {
		return text
	}
	return paint(text)
}

// Paintf is Paint with formatting.
func (c Color) Paintf(format string, args ...interface{}) string {
	paint, ok := paints[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return paint(format, args...)
}

func (c Color) String() string {
	return c.Paint(string(c))
}

// ByName resolves a color from user input, ignoring case.
func ByName(name string) (Color, error) {
	c := Color(strings.ToUpper(name))
	if !c.Valid() {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
