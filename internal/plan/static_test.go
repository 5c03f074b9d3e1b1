package plan

import (
	"testing"

	"github.com/Mag-Tataho/heAIthy/internal/models"
)

func TestStaticPlanVeganTotals(t *testing.T) {
	p := StaticPlan(models.DietVegan)

	want := models.MacroNutrients{Calories: 1470, Protein: 69, Carbs: 160, Fats: 63}
	if p.TotalMacros != want {
		t.Fatalf("expected %+v, got %+v", want, p.TotalMacros)
	}
	if p.Day != "Vegan Sample" {
		t.Fatalf("expected Vegan Sample, got %q", p.Day)
	}
}

func TestStaticPlanIsDeterministic(t *testing.T) {
	for _, pref := range []models.DietaryPreference{
		models.DietNone, models.DietVegan, models.DietVegetarian,
		models.DietKeto, models.DietPaleo, models.DietHalal,
	} {
		a := StaticPlan(pref)
		b := StaticPlan(pref)
		if a != b {
			t.Fatalf("StaticPlan(%q) not deterministic", pref)
		}
		if a.Breakfast.Name == "" || a.TotalMacros.Calories == 0 {
			t.Fatalf("StaticPlan(%q) incomplete: %+v", pref, a)
		}
	}
}

func TestStaticPlanUnknownPreferenceFallsBack(t *testing.T) {
	p := StaticPlan(models.DietaryPreference("Carnivore"))
	if p.Day != "Balanced Sample" {
		t.Fatalf("expected default sample, got %q", p.Day)
	}
}
