package product

// Category groups the catalog into the food and fruit tabs.
type Category string

const (
	Food  Category = "food"
	Fruit Category = "fruit"
)

type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	// Price in minor currency units (VND has none, so whole dong).
	Price     int64  `json:"price"`
	ImageName string `json:"imageName"`
}

// entry is a catalog row as written in YAML. Price is a decimal string
// ("15000" or "15000.00") so it can be copied from a NUMERIC column.
type entry struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Price    string   `yaml:"price"`
	Image    string   `yaml:"image"`
}
