package pcquote

// defaultEntry is a compact literal for the built-in catalog.
type defaultEntry struct {
	slot    Slot
	name    string
	price   int
	brand   string
	socket  string
	wattage int
	presets []int
}

// Built-in parts, used when no catalog can be loaded. Prices only: costs are
// estimated.
var defaultEntries = []defaultEntry{
	{slot: CPU, name: "锐龙5 5600X", price: 1200, brand: "amd", socket: "AM4", presets: []int{0}},
	{slot: CPU, name: "Core i5-13400F", price: 1100, brand: "intel", socket: "1700", presets: []int{1}},
	{slot: CPU, name: "锐龙7 5800X", price: 1800, brand: "amd", socket: "AM4", presets: []int{2}},
	{slot: CPU, name: "Core i7-13700F", price: 2000, brand: "intel", socket: "1700", presets: []int{3}},
	{slot: CPU, name: "锐龙9 7900X", price: 3500, brand: "amd", socket: "AM5", presets: []int{4}},

	{slot: Cooler, name: "利民 PA120", price: 199},
	{slot: Cooler, name: "九州风神 AK620", price: 299},

	{slot: Motherboard, name: "华硕 B550", price: 900, socket: "AM4", presets: []int{0, 2}},
	{slot: Motherboard, name: "技嘉 B660", price: 1000, socket: "1700", presets: []int{1}},
	{slot: Motherboard, name: "微星 X570", price: 1800, socket: "AM4"},
	{slot: Motherboard, name: "华硕 Z690", price: 2000, socket: "1700", presets: []int{3}},
	{slot: Motherboard, name: "技嘉 X670", price: 2500, socket: "AM5", presets: []int{4}},

	{slot: Memory, name: "金士顿 16GB DDR4", price: 350, presets: []int{0}},
	{slot: Memory, name: "芝奇 16GB DDR4", price: 380, presets: []int{1}},
	{slot: Memory, name: "海盗船 32GB DDR4", price: 700, presets: []int{2, 3}},
	{slot: Memory, name: "金士顿 32GB DDR5", price: 900},
	{slot: Memory, name: "芝奇 32GB DDR5", price: 950, presets: []int{4}},

	{slot: Storage, name: "三星 500GB NVMe", price: 400},
	{slot: Storage, name: "西部数据 1TB NVMe", price: 700, presets: []int{0, 1, 2}},
	{slot: Storage, name: "铠侠 1TB SATA", price: 500},
	{slot: Storage, name: "三星 2TB NVMe", price: 1200, presets: []int{3, 4}},
	{slot: Storage, name: "西部数据 2TB NVMe", price: 1300},

	{slot: GPU, name: "RTX 4060", price: 2500, brand: "nvidia", presets: []int{0}},
	{slot: GPU, name: "RTX 4070", price: 4000, brand: "nvidia", presets: []int{1}},
	{slot: GPU, name: "RTX 4080", price: 7000, brand: "nvidia", presets: []int{3, 4}},
	{slot: GPU, name: "RX 7700XT", price: 3500, brand: "amd", presets: []int{2}},
	{slot: GPU, name: "RX 7800XT", price: 4500, brand: "amd"},

	{slot: PSU, name: "海盗船 650W", price: 500, wattage: 650, presets: []int{0, 1}},
	{slot: PSU, name: "振华 700W", price: 450, wattage: 700},
	{slot: PSU, name: "鑫谷 750W", price: 400, wattage: 750, presets: []int{2}},
	{slot: PSU, name: "海盗船 850W", price: 700, wattage: 850, presets: []int{3}},
	{slot: PSU, name: "长城 1000W", price: 900, wattage: 1000, presets: []int{4}},

	{slot: Case, name: "中塔机箱", price: 299},
	{slot: Case, name: "ATX机箱", price: 399},

	{slot: Monitor, name: "AOC 24G2 24英寸", price: 899},
	{slot: Monitor, name: "戴尔 U2723QE 27英寸", price: 3299},

	{slot: PeripheralKit, name: "罗技 MK275 键鼠套装", price: 99},
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	entries := make([]CatalogEntry, 0, len(defaultEntries))
	for _, d := range defaultEntries {
		entries = append(entries, CatalogEntry{
			Slot:    d.slot,
			Name:    d.name,
			Price:   Y(d.price),
			Brand:   d.brand,
			Socket:  d.socket,
			Wattage: d.wattage,
			Presets: d.presets,
		})
	}
	return NewCatalog(entries...)
}

// DefaultPresets returns the hand-authored presets matching DefaultCatalog.
func DefaultPresets() []Preset {
	return []Preset{
		{
			Name:        "办公",
			Description: "office desktop with integrated peripherals",
			Items: []PresetItem{
				{Slot: CPU, Name: "Core i5-13400F"},
				{Slot: Motherboard, Name: "技嘉 B660"},
				{Slot: Memory, Name: "金士顿 16GB DDR4"},
				{Slot: Storage, Name: "铠侠 1TB SATA"},
				{Slot: GPU, Name: "RTX 4060"},
				{Slot: PSU, Name: "海盗船 650W"},
				{Slot: Case, Name: "中塔机箱"},
				{Slot: Monitor, Name: "AOC 24G2 24英寸"},
				{Slot: PeripheralKit, Name: "罗技 MK275 键鼠套装"},
			},
		},
		{
			Name:        "游戏",
			Description: "1440p gaming",
			Items: []PresetItem{
				{Slot: CPU, Name: "Core i7-13700F"},
				{Slot: Cooler, Name: "九州风神 AK620"},
				{Slot: Motherboard, Name: "华硕 Z690"},
				{Slot: Memory, Name: "芝奇 16GB DDR4", Quantity: 2},
				{Slot: Storage, Name: "西部数据 1TB NVMe"},
				{Slot: GPU, Name: "RTX 4070"},
				{Slot: PSU, Name: "海盗船 850W"},
				{Slot: Case, Name: "ATX机箱"},
			},
		},
		{
			Name:        "设计",
			Description: "workstation for photo and video editing",
			Items: []PresetItem{
				{Slot: CPU, Name: "锐龙9 7900X"},
				{Slot: Cooler, Name: "九州风神 AK620"},
				{Slot: Motherboard, Name: "技嘉 X670"},
				{Slot: Memory, Name: "芝奇 32GB DDR5", Quantity: 2},
				{Slot: Storage, Name: "三星 2TB NVMe"},
				{Slot: GPU, Name: "RTX 4080"},
				{Slot: PSU, Name: "长城 1000W"},
				{Slot: Case, Name: "ATX机箱"},
				{Slot: Monitor, Name: "戴尔 U2723QE 27英寸"},
			},
		},
	}
}
