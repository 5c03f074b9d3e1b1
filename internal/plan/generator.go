// Package plan holds the meal-plan surface: the AI generator boundary and the
// static sample plans shown to free-tier users.
package plan

import (
	"context"

	"github.com/Mag-Tataho/heAIthy/internal/models"
)

// Generator produces personalized meal plans and chat replies. The real
// implementation is an external model service; Canned stands in for it when
// no service is wired.
type Generator interface {
	MealPlan(ctx context.Context, profile models.UserProfile) (*models.DailyPlan, error)
	Advice(ctx context.Context, history []models.ChatMessage, profile models.UserProfile) (string, error)
}
