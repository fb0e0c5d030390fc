package testdata

import "github.com/MichalMitros/ecom-reconciler/internal/decoder"

var Offers = []decoder.Offer{
	{
		ID:    "7d3a4c1e-0b5f-4a8e-9e61-2f1c9a7b5d10",
		Name:  `Нурофен "Экспресс" 200 мг`,
		Price: "312.50",
		Count: "14",
	},
	{
		ID:    "102938",
		Name:  "Аспирин Кардио",
		Price: "129",
		Count: "0",
	},
	{
		ID:    "5566",
		Name:  "Витамин C",
		Price: "84.90",
	},
}
