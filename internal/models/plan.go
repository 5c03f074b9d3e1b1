package models

// MacroNutrients are day totals in grams, calories in kcal.
type MacroNutrients struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// MealMacros are per-meal macros as display strings ("22g").
type MealMacros struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

type MealItem struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Calories    int        `json:"calories"`
	Macros      MealMacros `json:"macros"`
}

// DailyPlan is one day of meals, either AI-generated or a static sample.
type DailyPlan struct {
	Day         string         `json:"day"`
	Breakfast   MealItem       `json:"breakfast"`
	Lunch       MealItem       `json:"lunch"`
	Dinner      MealItem       `json:"dinner"`
	Snack       MealItem       `json:"snack"`
	TotalMacros MacroNutrients `json:"totalMacros"`
}
