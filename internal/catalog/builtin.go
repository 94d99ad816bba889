package catalog

// builtinProducts is the default 50-product vending lineup plus the
// reserved hand row. Weights are gross grams, prices in won.
var builtinProducts = []Product{
	{ID: 0, Name: "hand", Category: NonProduct, UnitWeightG: 0, UnitPrice: 0},

	// beverages
	{ID: 1, Name: "pulmuone_spring_water_500", Category: Beverage, UnitWeightG: 520, UnitPrice: 1200},
	{ID: 2, Name: "samdasoo_500", Category: Beverage, UnitWeightG: 520, UnitPrice: 1000},
	{ID: 3, Name: "evian_500", Category: Beverage, UnitWeightG: 530, UnitPrice: 2500},
	{ID: 4, Name: "coca_cola_350", Category: Beverage, UnitWeightG: 380, UnitPrice: 1800},
	{ID: 5, Name: "sprite_350", Category: Beverage, UnitWeightG: 380, UnitPrice: 1800},
	{ID: 6, Name: "fanta_orange_350", Category: Beverage, UnitWeightG: 385, UnitPrice: 1800},
	{ID: 7, Name: "pocari_sweat_500", Category: Beverage, UnitWeightG: 540, UnitPrice: 2000},
	{ID: 8, Name: "gatorade_600", Category: Beverage, UnitWeightG: 640, UnitPrice: 2500},
	{ID: 9, Name: "vita500", Category: Beverage, UnitWeightG: 130, UnitPrice: 1200},
	{ID: 10, Name: "hot6", Category: Beverage, UnitWeightG: 260, UnitPrice: 1500},

	// snacks
	{ID: 11, Name: "pepero_original", Category: Snack, UnitWeightG: 69, UnitPrice: 1500},
	{ID: 12, Name: "pepero_almond", Category: Snack, UnitWeightG: 72, UnitPrice: 1700},
	{ID: 13, Name: "choco_pie", Category: Snack, UnitWeightG: 39, UnitPrice: 800},
	{ID: 14, Name: "orion_pie", Category: Snack, UnitWeightG: 35, UnitPrice: 700},
	{ID: 15, Name: "honey_butter_chip", Category: Snack, UnitWeightG: 60, UnitPrice: 2000},
	{ID: 16, Name: "potato_chip_original", Category: Snack, UnitWeightG: 65, UnitPrice: 1800},
	{ID: 17, Name: "shrimp_chip", Category: Snack, UnitWeightG: 90, UnitPrice: 1500},
	{ID: 18, Name: "onion_ring", Category: Snack, UnitWeightG: 84, UnitPrice: 1600},
	{ID: 19, Name: "cheese_ball", Category: Snack, UnitWeightG: 70, UnitPrice: 1400},
	{ID: 20, Name: "pringles_original", Category: Snack, UnitWeightG: 53, UnitPrice: 2500},

	// chocolate and candy
	{ID: 21, Name: "snickers", Category: Candy, UnitWeightG: 52, UnitPrice: 1500},
	{ID: 22, Name: "twix", Category: Candy, UnitWeightG: 50, UnitPrice: 1500},
	{ID: 23, Name: "kitkat", Category: Candy, UnitWeightG: 45, UnitPrice: 1200},
	{ID: 24, Name: "m_and_m", Category: Candy, UnitWeightG: 45, UnitPrice: 2000},
	{ID: 25, Name: "ferrero_rocher", Category: Candy, UnitWeightG: 37, UnitPrice: 2500},

	// convenience food
	{ID: 26, Name: "chickenmayo_rice", Category: Food, UnitWeightG: 365, UnitPrice: 3500},
	{ID: 27, Name: "tuna_rice", Category: Food, UnitWeightG: 350, UnitPrice: 3200},
	{ID: 28, Name: "spam_rice", Category: Food, UnitWeightG: 380, UnitPrice: 3800},
	{ID: 29, Name: "egg_sandwich", Category: Food, UnitWeightG: 170, UnitPrice: 2800},
	{ID: 30, Name: "ham_sandwich", Category: Food, UnitWeightG: 180, UnitPrice: 3200},
	{ID: 31, Name: "tuna_sandwich", Category: Food, UnitWeightG: 175, UnitPrice: 3500},
	{ID: 32, Name: "cup_noodle_small", Category: Food, UnitWeightG: 65, UnitPrice: 1200},
	{ID: 33, Name: "cup_noodle_big", Category: Food, UnitWeightG: 110, UnitPrice: 1800},
	{ID: 34, Name: "instant_rice", Category: Food, UnitWeightG: 210, UnitPrice: 2000},
	{ID: 35, Name: "kimbap", Category: Food, UnitWeightG: 250, UnitPrice: 2500},

	// dairy
	{ID: 36, Name: "seoul_milk_200", Category: Dairy, UnitWeightG: 210, UnitPrice: 1200},
	{ID: 37, Name: "banana_milk", Category: Dairy, UnitWeightG: 245, UnitPrice: 1500},
	{ID: 38, Name: "strawberry_milk", Category: Dairy, UnitWeightG: 245, UnitPrice: 1500},
	{ID: 39, Name: "chocolate_milk", Category: Dairy, UnitWeightG: 250, UnitPrice: 1500},
	{ID: 40, Name: "yogurt_plain", Category: Dairy, UnitWeightG: 85, UnitPrice: 1000},
	{ID: 41, Name: "yogurt_strawberry", Category: Dairy, UnitWeightG: 90, UnitPrice: 1200},
	{ID: 42, Name: "cheese_slice_pack", Category: Dairy, UnitWeightG: 200, UnitPrice: 3500},

	// health
	{ID: 43, Name: "protein_bar", Category: Health, UnitWeightG: 50, UnitPrice: 2500},
	{ID: 44, Name: "energy_bar", Category: Health, UnitWeightG: 45, UnitPrice: 2000},
	{ID: 45, Name: "granola_bar", Category: Health, UnitWeightG: 40, UnitPrice: 1800},
	{ID: 46, Name: "vitamin_c", Category: Health, UnitWeightG: 35, UnitPrice: 1500},
	{ID: 47, Name: "multivitamin", Category: Health, UnitWeightG: 30, UnitPrice: 2000},

	// everything else
	{ID: 48, Name: "gum_pack", Category: Etc, UnitWeightG: 25, UnitPrice: 1000},
	{ID: 49, Name: "mint_candy", Category: Etc, UnitWeightG: 15, UnitPrice: 800},
	{ID: 50, Name: "wet_tissue", Category: Etc, UnitWeightG: 50, UnitPrice: 1000},
}

// Builtin returns a catalog loaded with the default product lineup.
func Builtin() *Catalog {
	return New(builtinProducts)
}
