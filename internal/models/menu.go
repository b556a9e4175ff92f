package models

type ItemType string

const (
	ItemVeg    ItemType = "Veg"
	ItemNonVeg ItemType = "Non-Veg"
	ItemEgg    ItemType = "Egg"
	ItemNone   ItemType = "None"
)

type MenuCategory struct {
	ID       string `json:"_id,omitempty"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type MenuSubcategory struct {
	ID    string     `json:"_id,omitempty"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type Price struct {
	Standard          float64 `json:"standard"`
	HappyHour         float64 `json:"happyHour"`
	IsHappyHourActive bool    `json:"isHappyHourActive"`
}

// Normalize drops the happy-hour price while the happy-hour flag is off.
func (p Price) Normalize() Price {
	if !p.IsHappyHourActive {
		p.HappyHour = 0
	}
	return p
}

type MenuItem struct {
	ID          string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	Price       Price    `json:"price"`
}
