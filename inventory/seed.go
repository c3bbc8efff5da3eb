package inventory

import "copsis/domain"

// Seed is the inventory stored on first start.
func Seed() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "1", Name: "Amoxicillin 500mg", Category: "Tablets", Stock: 1500, Rank: "AX"},
		{ID: "2", Name: "Paracetamol 1g", Category: "Tablets", Stock: 85, Rank: "BX"},
		{ID: "3", Name: "Ibuprofen Syrup", Category: "Syrups", Stock: 0, Rank: "CZ"},
		{ID: "4", Name: "Ceftriaxone Injection", Category: "Injections", Stock: 45, Rank: "AY"},
		{ID: "5", Name: "Vitamin C", Category: "Tablets", Stock: 5000, Rank: "CX"},
		{ID: "6", Name: "Metformin 500mg", Category: "Tablets", Stock: 320, Rank: "BY"},
		{ID: "7", Name: "Cough Syrup", Category: "Syrups", Stock: 12, Rank: "BZ"},
	}
}
