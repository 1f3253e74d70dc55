package order

// Drink bases with a price on the menu.
const (
	Espresso   = "espresso"
	Americano  = "americano"
	Latte      = "latte"
	Cappuccino = "cappuccino"
)

// Serving sizes with a multiplier on the menu.
const (
	Small  = "small"
	Medium = "medium"
	Large  = "large"
)

// Milk types with a surcharge on the menu. MilkNone is the default.
const (
	MilkNone  = "none"
	MilkWhole = "whole"
	MilkSkim  = "skim"
	MilkOat   = "oat"
	MilkSoy   = "soy"
)

const (
	// SyrupPrice is charged for every syrup on the order.
	SyrupPrice = 40.0

	// IcedPrice is charged once when the drink is iced.
	IcedPrice = 0.2

	// MaxSugar is the largest accepted number of sugar teaspoons.
	MaxSugar = 5

	// MaxSyrups is the number of distinct syrups a drink can hold.
	MaxSyrups = 4

	defaultSizeMultiplier = 1.0
)

// MenuItem is a named price table entry. Value is a price for bases and milks
// and a multiplier for sizes.
type MenuItem struct {
	Name  string
	Value float64
}

// Menu is a snapshot of the pricing tables in menu order.
type Menu struct {
	Bases      []MenuItem
	Sizes      []MenuItem
	Milks      []MenuItem
	SyrupPrice float64
	IcedPrice  float64
	MaxSugar   int
	MaxSyrups  int
}

// GetMenu returns a fresh Menu; callers may modify it freely.
func GetMenu() Menu {
	return Menu{
		Bases:      baseItems(),
		Sizes:      sizeItems(),
		Milks:      milkItems(),
		SyrupPrice: SyrupPrice,
		IcedPrice:  IcedPrice,
		MaxSugar:   MaxSugar,
		MaxSyrups:  MaxSyrups,
	}
}

func baseItems() []MenuItem {
	return []MenuItem{
		{Name: Espresso, Value: 200.0},
		{Name: Americano, Value: 250.0},
		{Name: Latte, Value: 300.0},
		{Name: Cappuccino, Value: 320.0},
	}
}

func sizeItems() []MenuItem {
	return []MenuItem{
		{Name: Small, Value: 1.0},
		{Name: Medium, Value: 1.2},
		{Name: Large, Value: 1.4},
	}
}

func milkItems() []MenuItem {
	return []MenuItem{
		{Name: MilkNone, Value: 0.0},
		{Name: MilkWhole, Value: 30.0},
		{Name: MilkSkim, Value: 30.0},
		{Name: MilkOat, Value: 60.0},
		{Name: MilkSoy, Value: 50.0},
	}
}

// lookup finds name in items. ok is false for names not on the menu.
func lookup(items []MenuItem, name string) (float64, bool) {
	for _, item := range items {
		if item.Name == name {
			return item.Value, true
		}
	}
	return 0, false
}
