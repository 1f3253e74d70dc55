package order

import (
	"fmt"
	"slices"
	"strings"
)

// selection is the option set shared by Builder and Order.
type selection struct {
	base   string
	size   string
	milk   string
	syrups []string
	sugar  int
	iced   bool
}

func newSelection() selection {
	return selection{
		milk:   MilkNone,
		syrups: make([]string, 0, MaxSyrups),
	}
}

// clone returns a copy that shares no memory with s.
func (s selection) clone() selection {
	c := s
	c.syrups = slices.Clone(s.syrups)
	if c.syrups == nil {
		c.syrups = []string{}
	}
	return c
}

// price is zero for a base not on the menu, whatever else is selected.
func (s selection) price() float64 {
	basePrice, ok := lookup(baseItems(), s.base)
	if !ok {
		return 0.0
	}

	multiplier, ok := lookup(sizeItems(), s.size)
	if !ok {
		multiplier = defaultSizeMultiplier
	}

	price := basePrice * multiplier

	// unknown milk adds nothing
	milkPrice, _ := lookup(milkItems(), s.milk)
	price += milkPrice

	price += float64(len(s.syrups)) * SyrupPrice

	if s.iced {
		price += IcedPrice
	}

	return price
}

func (s selection) description() string {
	parts := make([]string, 0, 5)

	if s.size != "" && s.base != "" {
		parts = append(parts, fmt.Sprintf("%s %s", s.size, s.base))
	}

	if s.milk != "" && s.milk != MilkNone {
		parts = append(parts, fmt.Sprintf("with %s milk", s.milk))
	}

	if len(s.syrups) > 0 {
		parts = append(parts, "+"+strings.Join(s.syrups, ", "))
	}

	if s.iced {
		parts = append(parts, "(iced)")
	}

	if s.sugar > 0 {
		parts = append(parts, fmt.Sprintf("%d tsp sugar", s.sugar))
	}

	return strings.Join(parts, " ")
}
