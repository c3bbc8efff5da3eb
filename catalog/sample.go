package catalog

import "copsis/domain"

// Sample returns the built-in demonstration catalog.
func Sample() *Catalog {
	c, err := New(sampleProducts())
	if err != nil {
		panic(err)
	}
	return c
}

func sampleProducts() []domain.Product {
	d := domain.MustParseDate
	return []domain.Product{
		{ID: "p1", Name: "Panadol Extra", Price: 1500, Batches: []domain.Batch{
			{ID: "b1", BatchNumber: "PAN-101", ExpiryDate: d("2026-05-20"), Stock: 15},
			{ID: "b2", BatchNumber: "PAN-102", ExpiryDate: d("2027-01-10"), Stock: 50},
		}},
		{ID: "p2", Name: "Amoxicillin 500mg", Price: 3500, Batches: []domain.Batch{
			{ID: "b3", BatchNumber: "AMX-882", ExpiryDate: d("2023-12-01"), Stock: 5},
			{ID: "b4", BatchNumber: "AMX-900", ExpiryDate: d("2025-06-15"), Stock: 100},
		}},
		{ID: "p3", Name: "Vitamin C 1000mg", Price: 2000, Batches: []domain.Batch{
			{ID: "b5", BatchNumber: "VIT-001", ExpiryDate: d("2026-02-28"), Stock: 20},
		}},
		{ID: "p4", Name: "Cough Syrup (Benylin)", Price: 4200, Batches: []domain.Batch{
			{ID: "b6", BatchNumber: "BEN-455", ExpiryDate: d("2024-11-10"), Stock: 8},
		}},
		{ID: "p5", Name: "Artemether/Lumefantrine (Lonart)", Price: 2800, Batches: []domain.Batch{
			{ID: "b7", BatchNumber: "LON-303", ExpiryDate: d("2026-08-15"), Stock: 40},
		}},
		{ID: "p6", Name: "Ciprofloxacin 500mg", Price: 1200, Batches: []domain.Batch{
			{ID: "b8", BatchNumber: "CIP-112", ExpiryDate: d("2025-12-01"), Stock: 30},
			{ID: "b9", BatchNumber: "CIP-115", ExpiryDate: d("2027-03-20"), Stock: 65},
		}},
		{ID: "p7", Name: "Omeprazole 20mg", Price: 1800, Batches: []domain.Batch{
			{ID: "b10", BatchNumber: "OME-555", ExpiryDate: d("2026-01-30"), Stock: 25},
		}},
		{ID: "p8", Name: "Metronidazole 400mg (Flagyl)", Price: 500, Batches: []domain.Batch{
			{ID: "b11", BatchNumber: "MET-009", ExpiryDate: d("2025-10-10"), Stock: 150},
		}},
		{ID: "p9", Name: "Ibuprofen 400mg", Price: 800, Batches: []domain.Batch{
			{ID: "b12", BatchNumber: "IBU-221", ExpiryDate: d("2026-07-07"), Stock: 80},
		}},
		{ID: "p10", Name: "Multivitamin Syrup (Abidec)", Price: 3500, Batches: []domain.Batch{
			{ID: "b13", BatchNumber: "ABI-774", ExpiryDate: d("2025-05-05"), Stock: 12},
		}},
	}
}
