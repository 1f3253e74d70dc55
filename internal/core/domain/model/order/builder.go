package order

import (
	"slices"

	"coffee/internal/core/domain/model/kernel"
	"coffee/internal/pkg/errs"
)

var (
	// ErrMissingField classifies Build failures caused by an unset base or size.
	ErrMissingField = errs.ErrValueIsRequired

	// ErrInvalidArgument classifies rejected setter arguments such as sugar out of range.
	ErrInvalidArgument = errs.ErrValueIsOutOfRange
)

// Builder accumulates drink options and produces Orders.
//
// Setters return the builder so calls can be chained:
//
//	b := order.NewBuilder()
//	b.SetBase(order.Latte).SetSize(order.Medium).SetMilk(order.MilkOat).AddSyrup("vanilla")
//	if _, err := b.SetSugar(2); err != nil {
//	    return err
//	}
//	o, err := b.Build()
//
// Build may be called any number of times; every Order is independent of the
// builder and of the other Orders. A Builder is not safe for concurrent use.
type Builder struct {
	sel selection
}

// NewBuilder returns an empty builder: no base, no size, no milk, no syrups,
// no sugar, not iced.
func NewBuilder() *Builder {
	return &Builder{sel: newSelection()}
}

// SetBase stores the drink base. Names not on the menu are kept and price the
// order at zero.
func (b *Builder) SetBase(name string) *Builder {
	b.sel.base = name
	return b
}

// SetSize stores the serving size. Names not on the menu use multiplier 1.0.
func (b *Builder) SetSize(name string) *Builder {
	b.sel.size = name
	return b
}

// SetMilk stores the milk type. Names not on the menu add no surcharge.
func (b *Builder) SetMilk(name string) *Builder {
	b.sel.milk = name
	return b
}

// AddSyrup appends a syrup unless it is already present or MaxSyrups is reached.
// Both cases are silently ignored.
func (b *Builder) AddSyrup(name string) *Builder {
	if slices.Contains(b.sel.syrups, name) || len(b.sel.syrups) >= MaxSyrups {
		return b
	}
	b.sel.syrups = append(b.sel.syrups, name)
	return b
}

// SetSugar stores the number of sugar teaspoons. Values outside [0, MaxSugar]
// fail with ErrInvalidArgument and leave the builder unchanged.
func (b *Builder) SetSugar(teaspoons int) (*Builder, error) {
	if teaspoons < 0 || teaspoons > MaxSugar {
		return b, errs.NewValueIsOutOfRangeError("sugar", teaspoons, 0, MaxSugar)
	}
	b.sel.sugar = teaspoons
	return b, nil
}

// SetIced stores whether the drink is served over ice.
func (b *Builder) SetIced(iced bool) *Builder {
	b.sel.iced = iced
	return b
}

// Ice is shorthand for SetIced(true).
func (b *Builder) Ice() *Builder {
	return b.SetIced(true)
}

// ClearExtras drops milk, syrups, sugar and ice. Base and size are kept.
func (b *Builder) ClearExtras() *Builder {
	b.sel.milk = MilkNone
	b.sel.syrups = make([]string, 0, MaxSyrups)
	b.sel.sugar = 0
	b.sel.iced = false
	return b
}

// Reset returns the builder to the state NewBuilder produces.
func (b *Builder) Reset() *Builder {
	b.sel = newSelection()
	return b
}

// Build validates the accumulated options and returns a new Order carrying a
// copy of them together with the computed price and description.
//
// Returns ErrMissingField naming "base" when no base is set, otherwise naming
// "size" when no size is set. The builder itself is not modified.
func (b *Builder) Build() (*Order, error) {
	if b.sel.base == "" {
		return nil, errs.NewValueIsRequiredError("base")
	}
	if b.sel.size == "" {
		return nil, errs.NewValueIsRequiredError("size")
	}

	return &Order{
		id:            kernel.NewUUID(),
		sel:           b.sel.clone(),
		price:         b.sel.price(),
		description:   b.sel.description(),
		isConstructed: true,
	}, nil
}
