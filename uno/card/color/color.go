package color

import (
	"fmt"

	"github.com/fatih/color"
)

// Color is a card color. Black marks the wild family and is never a
// legal active color.
type Color int

const (
	_ Color = iota
	Red
	Yellow
	Green
	Blue
	Black
)

var names = map[Color]string{
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Black:  "black",
}

var paints = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Black:  color.New(color.FgHiWhite).SprintfFunc(),
}

// Picks are the colors a player may nominate after a wild-family play.
var Picks = []Color{Red, Yellow, Green, Blue}

func (c Color) Name() string {
	return names[c]
}

func (c Color) Paint(text string) string {
	return paints[c](text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return paints[c](format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Name() + `"`), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	name := string(data)
	if len(name) >= 2 && name[0] == '"' {
		name = name[1 : len(name)-1]
	}
	parsed, err := ByName(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ByName(name string) (Color, error) {
	for c, n := range names {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid color '%s'", name)
}
