package memstore

import "storefront/internal/domain/entity"

// defaultCatalog is the built-in product fixture set used when no seed file
// is configured.
var defaultCatalog = []entity.Product{
	{
		ID:          "product-1",
		Name:        "Wireless Headphones",
		Description: "Over-ear wireless headphones with active noise cancelling.",
		Price:       129.99,
		Category:    "electronics",
		Stock:       40,
		Featured:    true,
	},
	{
		ID:          "product-2",
		Name:        "Mechanical Keyboard",
		Description: "Tenkeyless mechanical keyboard with hot-swappable switches.",
		Price:       89.50,
		Category:    "electronics",
		Stock:       25,
		Featured:    true,
	},
	{
		ID:          "product-3",
		Name:        "Espresso Grinder",
		Description: "Conical burr grinder tuned for espresso-fine settings.",
		Price:       199.00,
		Category:    "kitchen",
		Stock:       12,
	},
	{
		ID:          "product-4",
		Name:        "Travel Mug",
		Description: "Vacuum-insulated 350ml travel mug, keeps drinks hot for 6 hours.",
		Price:       24.95,
		Category:    "kitchen",
		Stock:       120,
	},
	{
		ID:          "product-5",
		Name:        "Running Shoes",
		Description: "Lightweight road running shoes with responsive foam midsole.",
		Price:       139.00,
		Category:    "sports",
		Stock:       35,
		Featured:    true,
	},
	{
		ID:          "product-6",
		Name:        "Yoga Mat",
		Description: "Non-slip 6mm yoga mat with carrying strap.",
		Price:       34.00,
		Category:    "sports",
		Stock:       80,
	},
	{
		ID:          "product-7",
		Name:        "Desk Lamp",
		Description: "Dimmable LED desk lamp with USB-C charging port.",
		Price:       45.90,
		Category:    "home",
		Stock:       60,
	},
	{
		ID:          "product-8",
		Name:        "Notebook Set",
		Description: "Set of three dotted A5 notebooks, 120gsm paper.",
		Price:       18.50,
		Category:    "stationery",
		Stock:       200,
	},
}
