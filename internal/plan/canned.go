package plan

import (
	"context"
	"fmt"

	"github.com/Mag-Tataho/heAIthy/internal/models"
)

// Canned is a Generator with no model behind it. It personalizes the static
// sample for the profile's preference and answers chat with goal-aware
// boilerplate, so the client works end to end without an inference service.
type Canned struct{}

func (Canned) MealPlan(_ context.Context, profile models.UserProfile) (*models.DailyPlan, error) {
	day := StaticPlan(profile.DietaryPreference)
	name := profile.Name
	if name == "" {
		name = "you"
	}
	day.Day = fmt.Sprintf("%s Plan for %s", goalLabel(profile.Goal), name)
	return &day, nil
}

func (Canned) Advice(_ context.Context, history []models.ChatMessage, profile models.UserProfile) (string, error) {
	if len(history) == 0 {
		return "Tell me about your goals and I can help you plan your meals.", nil
	}
	return fmt.Sprintf(
		"Great question! With your goal to %s, focus on whole foods, steady protein, and plenty of water. Your current plan is a good starting point.",
		goalLabel(profile.Goal),
	), nil
}

func goalLabel(goal models.Goal) string {
	if goal == "" {
		return "stay healthy"
	}
	return string(goal)
}
