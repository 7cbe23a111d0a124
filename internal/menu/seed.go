package menu

import "github.com/shopspring/decimal"

func seedDish(id, name string, price int64, qty string, spice int, ingredients, category, description string) Dish {
	return Dish{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       decimal.NewFromInt(price),
		Quantity:    qty,
		SpiceLevel:  spice,
		Ingredients: ingredients,
		Description: description,
	}
}

// DefaultDishes is the house menu used to seed an empty backend.
func DefaultDishes() []Dish {
	lemonRice := seedDish("lemon-rice", "Lemon Rice", 160, "750 ML", 3,
		"Lemon, Rice, Spices", "Rice Varieties",
		"Tangy and aromatic rice with fresh lemon and traditional spices")
	lemonRice.MaxQuantity = "AS PER REQUIREMENT(MAX 750 ML)"

	return []Dish{
		lemonRice,
		seedDish("veg-biryani", "Veg Biryani", 180, "750 ML", 4,
			"with onion and chillies", "Rice Varieties",
			"Fragrant basmati rice cooked with mixed vegetables and aromatic spices"),
		seedDish("curd-rice", "Curd Rice", 250, "750 ML", 2,
			"Soft cooked rice with creamy curd", "Rice Varieties",
			"Cooling and comforting rice mixed with fresh yogurt"),
		seedDish("tomato-rice", "Tomato Rice", 150, "750 ML", 4,
			"Juicy Tomatoes with onion and chilli powder, cooked rice", "Rice Varieties",
			"Flavorful rice cooked with fresh tomatoes and spices"),
		seedDish("vatha-kozhambu", "Vatha Kozhambu", 210, "450 ML", 4,
			"small onion, Tomatoes, garlic with Tamarind Pulp with some spices", "Gravies",
			"Traditional tangy curry with tamarind and aromatic spices"),
		seedDish("bisibelabath", "Bisibelabath", 150, "750 ML", 3,
			"Rice, Dal, veggies, ghee", "Rice Varieties",
			"Karnataka special one-pot meal with rice, lentils and vegetables"),
		seedDish("kootu", "Kootu (Veggies)", 160, "450ML", 2,
			"Soft cooked moong dal with any veggies", "Side Dishes",
			"Nutritious dal and vegetable preparation"),
		seedDish("poriyal", "Poriyal (Veggies)", 170, "450ML", 3,
			"Carrot, beans, Cabbage, Chow chow, Beetroot if any veggies - Cooked with some spices", "Side Dishes",
			"Fresh vegetables stir-fried with traditional spices"),
		seedDish("varuval", "Varuval (Veggies)", 180, "450ML", 4,
			"Potato, Vazhaikai, Senai kizhghu - if any requires Cooked with deep fry with chilli, pepper powder", "Side Dishes",
			"Crispy fried vegetables with spicy seasonings"),
		seedDish("white-rice", "White Rice", 85, "750 ML", 1,
			"Steamed rice", "Rice Varieties",
			"Perfectly steamed white rice"),
		seedDish("sambhar", "Sambhar", 150, "450 ML", 3,
			"Toor dal with mix veg, sambar powder", "Gravies",
			"Traditional South Indian lentil curry with vegetables"),
		seedDish("rasam", "Rasam", 110, "450 ML", 4,
			"Tomatoes, tamarind pulp, crushed garlic, pepper, jeera powder", "Gravies",
			"Tangy and spicy tomato-based soup with traditional spices"),
		seedDish("mor-kozlambu", "Mor Kozlambu", 190, "450 ML", 4,
			"Ginger, grated Coconut, green chillies, spices", "Gravies",
			"Traditional buttermilk curry with coconut and spices"),
		seedDish("idly-sambhar", "Idly + Sambhar", 120, "6 nos", 5,
			"Steamed soft rice balls with spicy chilli chutney", "Breakfast",
			"Fluffy steamed rice cakes served with sambhar and chutney"),
		seedDish("dosa-chutney", "Dosa + Chutney", 150, "4 nos", 4,
			"Rice, urid dal, fenugreek with coconut, chilli chutney", "Breakfast",
			"Crispy fermented crepe served with coconut chutney"),
		seedDish("chapathi-kurma", "Chapathi + Veg Kurma", 140, "4 nos", 4,
			"Wheat flavour with salt, fresh veggies with spices", "Breakfast",
			"Soft wheat flatbread served with spiced vegetable curry"),
		seedDish("poori-potato", "Poori + Potato", 120, "4 nos", 4,
			"wheat flavour, potato, onion, green chillies", "Breakfast",
			"Deep-fried bread served with spiced potato curry"),
		seedDish("full-meals", "Full Meals", 350, "2 persons to eat", 5,
			"steamed rice, dal veggies, Potato, cabbage, tomatoes, Tamarind pulp, semiya ghee, urid dal", "Complete Meals",
			"Traditional South Indian thali with rice, sambhar, kootu, poriyal, varuval, vatha kozhambu, rasam, mor, vada, payasam"),
		seedDish("avial", "Avial", 175, "450 ML", 3,
			"fresh veggies, coconut oil, pepper, jeera, green chillies", "Side Dishes",
			"Traditional mixed vegetable curry with coconut"),
		seedDish("sambarava-upma", "Sambarava Upma", 180, "750 ML", 3,
			"broken wheat rava, onion, chilli, ginger, oil", "Breakfast",
			"Savory semolina preparation with vegetables and spices"),
		seedDish("pongal-chutney", "Pongal + Chutney, Sambar", 200, "750ml", 3,
			"moong dal, raw rice with pepper and jeera ghee, ginger", "Breakfast",
			"Traditional rice and lentil dish with ghee and spices"),
	}
}
