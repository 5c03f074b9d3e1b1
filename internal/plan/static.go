package plan

import "github.com/Mag-Tataho/heAIthy/internal/models"

// StaticPlan returns the hand-authored sample day for a dietary preference.
// Pure function: identical input, identical literal output. Free-tier users
// only ever see these.
func StaticPlan(preference models.DietaryPreference) models.DailyPlan {
	switch preference {
	case models.DietVegan:
		return models.DailyPlan{
			Day: "Vegan Sample",
			Breakfast: models.MealItem{
				Name:        "Tofu Scramble",
				Description: "Crumbled tofu with turmeric, spinach, and tomatoes.",
				Calories:    320,
				Macros:      models.MealMacros{Protein: "22g", Carbs: "15g", Fats: "18g"},
			},
			Lunch: models.MealItem{
				Name:        "Quinoa Buddha Bowl",
				Description: "Quinoa, chickpeas, avocado, and tahini dressing.",
				Calories:    450,
				Macros:      models.MealMacros{Protein: "18g", Carbs: "55g", Fats: "20g"},
			},
			Dinner: models.MealItem{
				Name:        "Lentil Curry",
				Description: "Red lentils simmered in coconut milk with basmati rice.",
				Calories:    500,
				Macros:      models.MealMacros{Protein: "25g", Carbs: "65g", Fats: "15g"},
			},
			Snack: models.MealItem{
				Name:        "Apple & Almond Butter",
				Description: "Sliced apple with a tablespoon of almond butter.",
				Calories:    200,
				Macros:      models.MealMacros{Protein: "4g", Carbs: "25g", Fats: "10g"},
			},
			TotalMacros: models.MacroNutrients{Calories: 1470, Protein: 69, Carbs: 160, Fats: 63},
		}
	case models.DietVegetarian:
		return models.DailyPlan{
			Day: "Vegetarian Sample",
			Breakfast: models.MealItem{
				Name:        "Greek Yogurt Parfait",
				Description: "Greek yogurt with honey, granola, and berries.",
				Calories:    350,
				Macros:      models.MealMacros{Protein: "20g", Carbs: "45g", Fats: "8g"},
			},
			Lunch: models.MealItem{
				Name:        "Caprese Salad",
				Description: "Fresh mozzarella, tomatoes, basil, and balsamic glaze.",
				Calories:    400,
				Macros:      models.MealMacros{Protein: "18g", Carbs: "12g", Fats: "30g"},
			},
			Dinner: models.MealItem{
				Name:        "Vegetable Stir-Fry",
				Description: "Mixed vegetables and tofu in soy ginger sauce.",
				Calories:    450,
				Macros:      models.MealMacros{Protein: "25g", Carbs: "50g", Fats: "15g"},
			},
			Snack: models.MealItem{
				Name:        "Hummus & Carrots",
				Description: "Carrot sticks with creamy hummus.",
				Calories:    180,
				Macros:      models.MealMacros{Protein: "6g", Carbs: "20g", Fats: "10g"},
			},
			TotalMacros: models.MacroNutrients{Calories: 1380, Protein: 69, Carbs: 127, Fats: 63},
		}
	case models.DietKeto:
		return models.DailyPlan{
			Day: "Keto Sample",
			Breakfast: models.MealItem{
				Name:        "Bacon & Eggs",
				Description: "Two eggs fried in butter with bacon strips.",
				Calories:    450,
				Macros:      models.MealMacros{Protein: "28g", Carbs: "2g", Fats: "35g"},
			},
			Lunch: models.MealItem{
				Name:        "Chicken Caesar Salad",
				Description: "Grilled chicken, parmesan, and caesar dressing (no croutons).",
				Calories:    500,
				Macros:      models.MealMacros{Protein: "40g", Carbs: "5g", Fats: "35g"},
			},
			Dinner: models.MealItem{
				Name:        "Ribeye Steak & Asparagus",
				Description: "Seared ribeye steak with buttered asparagus.",
				Calories:    650,
				Macros:      models.MealMacros{Protein: "50g", Carbs: "4g", Fats: "45g"},
			},
			Snack: models.MealItem{
				Name:        "Cheese Cubes",
				Description: "Cheddar cheese cubes.",
				Calories:    200,
				Macros:      models.MealMacros{Protein: "14g", Carbs: "1g", Fats: "16g"},
			},
			TotalMacros: models.MacroNutrients{Calories: 1800, Protein: 132, Carbs: 12, Fats: 131},
		}
	case models.DietPaleo:
		return models.DailyPlan{
			Day: "Paleo Sample",
			Breakfast: models.MealItem{
				Name:        "Fruit Salad & Nuts",
				Description: "Mixed seasonal berries with walnuts.",
				Calories:    300,
				Macros:      models.MealMacros{Protein: "8g", Carbs: "35g", Fats: "18g"},
			},
			Lunch: models.MealItem{
				Name:        "Grilled Chicken Salad",
				Description: "Greens, grilled chicken, avocado, olive oil.",
				Calories:    450,
				Macros:      models.MealMacros{Protein: "35g", Carbs: "10g", Fats: "28g"},
			},
			Dinner: models.MealItem{
				Name:        "Salmon & Sweet Potato",
				Description: "Baked salmon with roasted sweet potato wedges.",
				Calories:    550,
				Macros:      models.MealMacros{Protein: "30g", Carbs: "40g", Fats: "25g"},
			},
			Snack: models.MealItem{
				Name:        "Hard Boiled Eggs",
				Description: "Two hard boiled eggs.",
				Calories:    140,
				Macros:      models.MealMacros{Protein: "12g", Carbs: "1g", Fats: "10g"},
			},
			TotalMacros: models.MacroNutrients{Calories: 1440, Protein: 85, Carbs: 86, Fats: 81},
		}
	case models.DietHalal:
		return models.DailyPlan{
			Day: "Halal Sample",
			Breakfast: models.MealItem{
				Name:        "Oatmeal with Dates",
				Description: "Oats cooked with milk and chopped dates.",
				Calories:    380,
				Macros:      models.MealMacros{Protein: "10g", Carbs: "70g", Fats: "6g"},
			},
			Lunch: models.MealItem{
				Name:        "Grilled Chicken Kabob",
				Description: "Halal chicken breast skewers with rice.",
				Calories:    500,
				Macros:      models.MealMacros{Protein: "45g", Carbs: "50g", Fats: "12g"},
			},
			Dinner: models.MealItem{
				Name:        "Beef Stew",
				Description: "Slow cooked halal beef chunks with carrots and potatoes.",
				Calories:    600,
				Macros:      models.MealMacros{Protein: "40g", Carbs: "35g", Fats: "30g"},
			},
			Snack: models.MealItem{
				Name:        "Almonds & Raisins",
				Description: "Handful of almonds and raisins.",
				Calories:    200,
				Macros:      models.MealMacros{Protein: "6g", Carbs: "20g", Fats: "14g"},
			},
			TotalMacros: models.MacroNutrients{Calories: 1680, Protein: 101, Carbs: 175, Fats: 62},
		}
	default:
		return models.DailyPlan{
			Day: "Balanced Sample",
			Breakfast: models.MealItem{
				Name:        "Oatmeal with Berries",
				Description: "Rolled oats topped with fresh blueberries and honey.",
				Calories:    350,
				Macros:      models.MealMacros{Protein: "12g", Carbs: "60g", Fats: "6g"},
			},
			Lunch: models.MealItem{
				Name:        "Grilled Chicken Salad",
				Description: "Mixed greens with grilled chicken breast and vinaigrette.",
				Calories:    450,
				Macros:      models.MealMacros{Protein: "40g", Carbs: "15g", Fats: "20g"},
			},
			Dinner: models.MealItem{
				Name:        "Baked Salmon & Veggies",
				Description: "Salmon fillet with roasted asparagus and quinoa.",
				Calories:    550,
				Macros:      models.MealMacros{Protein: "35g", Carbs: "45g", Fats: "25g"},
			},
			Snack: models.MealItem{
				Name:        "Greek Yogurt",
				Description: "Plain greek yogurt with a sprinkle of nuts.",
				Calories:    150,
				Macros:      models.MealMacros{Protein: "15g", Carbs: "8g", Fats: "5g"},
			},
			TotalMacros: models.MacroNutrients{Calories: 1500, Protein: 102, Carbs: 128, Fats: 56},
		}
	}
}
