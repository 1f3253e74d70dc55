package scenarios

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"coffee/internal/core/domain/model/order"
)

// priceTolerance bounds float noise when comparing prices.
const priceTolerance = 0.01

// Suite returns the acceptance scenarios in execution order.
func Suite() []Scenario {
	return []Scenario{
		{Name: "basic order", Run: basicOrder},
		{Name: "builder reuse", Run: builderReuse},
		{Name: "missing base", Run: missingBase},
		{Name: "missing size", Run: missingSize},
		{Name: "sugar limit", Run: sugarLimit},
		{Name: "sugar bounds", Run: sugarBounds},
		{Name: "syrup duplicates", Run: syrupDuplicates},
		{Name: "iced price", Run: icedPrice},
		{Name: "max syrups", Run: maxSyrups},
		{Name: "description format", Run: descriptionFormat},
		{Name: "default values", Run: defaultValues},
		{Name: "clear extras", Run: clearExtras},
		{Name: "unknown base", Run: unknownBase},
		{Name: "idempotent build", Run: idempotentBuild},
	}
}

func basicOrder() error {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).SetMilk(order.MilkOat).AddSyrup("vanilla")
	if _, err := b.SetSugar(2); err != nil {
		return err
	}
	o, err := b.Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expectEqual("base", o.Base(), order.Latte),
		expectEqual("size", o.Size(), order.Medium),
		expectEqual("milk", o.Milk(), order.MilkOat),
		expect(slices.Contains(o.Syrups(), "vanilla"), "syrups should contain vanilla, got %v", o.Syrups()),
		expectEqual("sugar", o.Sugar(), 2),
		expectPrice(o.Price(), 460.0),
		expectEqual("description", o.Description(), "medium latte with oat milk +vanilla 2 tsp sugar"),
	)
}

func builderReuse() error {
	b := order.NewBuilder().SetBase(order.Espresso).SetSize(order.Small)
	if _, err := b.SetSugar(1); err != nil {
		return err
	}
	first, err := b.Build()
	if err != nil {
		return err
	}
	price1, sugar1 := first.Price(), first.Sugar()

	if _, err = b.SetSize(order.Large).SetSugar(3); err != nil {
		return err
	}
	second, err := b.Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expect(first.Price() == price1, "first order price changed to %v", first.Price()),
		expect(first.Sugar() == sugar1, "first order sugar changed to %d", first.Sugar()),
		expect(second.Price() != price1, "second order should differ in price, both %v", price1),
		expectEqual("second order sugar", second.Sugar(), 3),
		expect(second.Price() > 0, "second order price should be positive, got %v", second.Price()),
	)
}

func missingBase() error {
	_, err := order.NewBuilder().SetSize(order.Medium).Build()
	return expectError(err, order.ErrMissingField, "base")
}

func missingSize() error {
	_, err := order.NewBuilder().SetBase(order.Latte).Build()
	return expectError(err, order.ErrMissingField, "size")
}

func sugarLimit() error {
	_, err := order.NewBuilder().SetSugar(6)
	return expectError(err, order.ErrInvalidArgument, "sugar")
}

func sugarBounds() error {
	b := order.NewBuilder()
	var errs []error
	for _, ok := range []int{0, order.MaxSugar} {
		if _, err := b.SetSugar(ok); err != nil {
			errs = append(errs, fmt.Errorf("sugar %d should be accepted: %w", ok, err))
		}
	}
	for _, bad := range []int{-1, order.MaxSugar + 1} {
		_, err := b.SetSugar(bad)
		errs = append(errs, expectError(err, order.ErrInvalidArgument, "sugar"))
	}
	return errors.Join(errs...)
}

func syrupDuplicates() error {
	twice, err := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).
		AddSyrup("vanilla").AddSyrup("vanilla").Build()
	if err != nil {
		return err
	}
	once, err := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).
		AddSyrup("vanilla").Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expectEqual("syrup count", len(twice.Syrups()), 1),
		expect(twice.Price() == once.Price(), "duplicate syrup changed price: %v vs %v", twice.Price(), once.Price()),
	)
}

func icedPrice() error {
	warm, err := order.NewBuilder().SetBase(order.Americano).SetSize(order.Small).SetIced(false).Build()
	if err != nil {
		return err
	}
	iced, err := order.NewBuilder().SetBase(order.Americano).SetSize(order.Small).Ice().Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expect(iced.Price() > warm.Price(), "iced should cost more: %v <= %v", iced.Price(), warm.Price()),
		expectPrice(iced.Price()-warm.Price(), order.IcedPrice),
	)
}

func maxSyrups() error {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).
		AddSyrup("vanilla").AddSyrup("caramel").AddSyrup("hazelnut").AddSyrup("chocolate")
	b.AddSyrup("cinnamon")

	o, err := b.Build()
	if err != nil {
		return err
	}
	return expectEqual("syrup count", len(o.Syrups()), order.MaxSyrups)
}

func descriptionFormat() error {
	b := order.NewBuilder().SetBase(order.Cappuccino).SetSize(order.Large).
		SetMilk(order.MilkSoy).AddSyrup("vanilla").Ice()
	if _, err := b.SetSugar(2); err != nil {
		return err
	}
	o, err := b.Build()
	if err != nil {
		return err
	}

	desc := o.Description()
	var errs []error
	for _, want := range []string{"large", "cappuccino", "soy", "vanilla", "(iced)", "2 tsp sugar"} {
		errs = append(errs, expect(strings.Contains(desc, want), "description %q lacks %q", desc, want))
	}
	return errors.Join(errs...)
}

func defaultValues() error {
	o, err := order.NewBuilder().SetBase(order.Espresso).SetSize(order.Small).Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expectEqual("milk", o.Milk(), order.MilkNone),
		expectEqual("syrup count", len(o.Syrups()), 0),
		expectEqual("sugar", o.Sugar(), 0),
		expectEqual("iced", o.Iced(), false),
		expectPrice(o.Price(), 200.0),
		expectEqual("description", o.Description(), "small espresso"),
	)
}

func clearExtras() error {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).
		SetMilk(order.MilkOat).AddSyrup("vanilla").Ice()
	if _, err := b.SetSugar(3); err != nil {
		return err
	}
	o, err := b.ClearExtras().Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expectEqual("base", o.Base(), order.Latte),
		expectEqual("size", o.Size(), order.Medium),
		expectEqual("milk", o.Milk(), order.MilkNone),
		expectEqual("syrup count", len(o.Syrups()), 0),
		expectEqual("sugar", o.Sugar(), 0),
		expectEqual("iced", o.Iced(), false),
	)
}

func unknownBase() error {
	b := order.NewBuilder().SetBase("mocha").SetSize(order.Large).SetMilk(order.MilkOat).AddSyrup("vanilla").Ice()
	o, err := b.Build()
	if err != nil {
		return err
	}
	return expectEqual("price", o.Price(), 0.0)
}

func idempotentBuild() error {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Small).AddSyrup("caramel")
	first, err := b.Build()
	if err != nil {
		return err
	}
	second, err := b.Build()
	if err != nil {
		return err
	}

	return errors.Join(
		expect(first != second, "build returned the same order twice"),
		expectEqual("price", second.Price(), first.Price()),
		expectEqual("description", second.Description(), first.Description()),
		expect(slices.Equal(first.Syrups(), second.Syrups()), "syrups differ: %v vs %v", first.Syrups(), second.Syrups()),
	)
}

func expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, args...)
}

func expectEqual[T comparable](what string, got, want T) error {
	return expect(got == want, "%s: got %v, want %v", what, got, want)
}

func expectPrice(got, want float64) error {
	return expect(math.Abs(got-want) < priceTolerance, "price: got %v, want %v", got, want)
}

// expectError checks err has kind and mentions field.
func expectError(err, kind error, field string) error {
	if err == nil {
		return fmt.Errorf("expected %v error naming %q, got none", kind, field)
	}
	if !errors.Is(err, kind) {
		return fmt.Errorf("expected %v error, got %w", kind, err)
	}
	return expect(strings.Contains(strings.ToLower(err.Error()), field), "error %q does not name %q", err, field)
}
