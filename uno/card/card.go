package card

import (
	"fmt"

	"github.com/uno-online/server/uno/card/color"
)

// Kind is a card face kind.
type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var kindNames = map[Kind]string{
	Number:       "number",
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "draw2",
	Wild:         "wild",
	WildDrawFour: "wild4",
}

func (k Kind) Name() string {
	return kindNames[k]
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.Name() + `"`), nil
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	name := string(data)
	if len(name) >= 2 && name[0] == '"' {
		name = name[1 : len(name)-1]
	}
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid card kind '%s'", name)
}

// Card is an immutable UNO card. Color is Black exactly for the wild
// family; Value is meaningful only when Kind is Number.
type Card struct {
	ID    string      `json:"id"`
	Color color.Color `json:"color"`
	Kind  Kind        `json:"type"`
	Value int         `json:"value,omitempty"`
}

func NewNumberCard(cardColor color.Color, value int, copyIndex int) Card {
	id := fmt.Sprintf("%s-%d", cardColor.Name(), value)
	if value > 0 {
		id = fmt.Sprintf("%s-%d-%d", cardColor.Name(), value, copyIndex)
	}
	return Card{ID: id, Color: cardColor, Kind: Number, Value: value}
}

func NewSkipCard(cardColor color.Color, copyIndex int) Card {
	return newActionCard(cardColor, Skip, copyIndex)
}

func NewReverseCard(cardColor color.Color, copyIndex int) Card {
	return newActionCard(cardColor, Reverse, copyIndex)
}

func NewDrawTwoCard(cardColor color.Color, copyIndex int) Card {
	return newActionCard(cardColor, DrawTwo, copyIndex)
}

func NewWildCard(copyIndex int) Card {
	return Card{ID: fmt.Sprintf("wild-%d", copyIndex), Color: color.Black, Kind: Wild}
}

func NewWildDrawFourCard(copyIndex int) Card {
	return Card{ID: fmt.Sprintf("wild4-%d", copyIndex), Color: color.Black, Kind: WildDrawFour}
}

func newActionCard(cardColor color.Color, kind Kind, copyIndex int) Card {
	return Card{
		ID:    fmt.Sprintf("%s-%s-%d", cardColor.Name(), kind.Name(), copyIndex),
		Color: cardColor,
		Kind:  kind,
	}
}

// IsWild reports whether the card belongs to the wild family.
func (c Card) IsWild() bool {
	return c.Color == color.Black
}

func (c Card) Equal(other Card) bool {
	return c.ID == other.ID
}

func (c Card) String() string {
	switch c.Kind {
	case Number:
		return c.Color.Paintf("[%d]", c.Value)
	case Skip:
		return c.Color.Paint("(/)")
	case Reverse:
		return c.Color.Paint("<=>")
	case DrawTwo:
		return c.Color.Paint("+2!")
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	}
	return c.ID
}
