package client

import (
	"context"
	"errors"
	"time"

	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/internal/plan"
	"github.com/Mag-Tataho/heAIthy/pkg/utils"
	"github.com/google/uuid"
)

// View is the top-level screen the client renders.
type View string

const (
	ViewAuth       View = "auth"
	ViewOnboarding View = "onboarding"
	ViewApp        View = "app"
	ViewAdmin      View = "admin"
)

// ProfileView is the nested profile-panel sub-state.
type ProfileView string

const (
	ProfileMenu          ProfileView = "menu"
	ProfileEdit          ProfileView = "edit_profile"
	ProfileDiet          ProfileView = "diet_preferences"
	ProfileNotifications ProfileView = "notifications"
	ProfileIntegrations  ProfileView = "integrations"
)

// freeChatLimit caps stored chat messages for free-tier accounts. The
// greeting counts; the send that would grow past the cap is rejected before
// the generator is contacted.
const freeChatLimit = 5

const chatGreeting = "Hello! I am your AI nutrition assistant. How can I help you reach your goals today?"

var (
	ErrChatLimit       = errors.New("free chat limit reached")
	ErrPremiumRequired = errors.New("premium required")
)

type NotificationSettings struct {
	MealReminders   bool
	WaterReminders  bool
	WeightReminders bool
}

// Backend is the slice of the sync gateway the session controller uses.
type Backend interface {
	Signup(ctx context.Context, name, email, password string) (models.UserProfile, error)
	Login(ctx context.Context, email, password string) (models.UserProfile, error)
	SubmitPayment(ctx context.Context, email, transactionID string) (models.UserProfile, error)
	RedeemCode(ctx context.Context, email, code string) (models.UserProfile, error)
	SyncProfile(ctx context.Context, email string, patch models.ProfilePatch) error
	AdminUsers(ctx context.Context) ([]models.AdminUserSummary, error)
	AdminReviews(ctx context.Context) ([]models.ReviewEntry, error)
	ApproveUser(ctx context.Context, email string) error
}

// Session is the client-side state machine: which view is showing, the
// profile copy the client holds, the chat transcript, and the premium gates.
// Single-user, not safe for concurrent use.
type Session struct {
	backend   Backend
	generator plan.Generator
	local     *LocalStore

	view        View
	profileView ProfileView
	user        models.UserProfile
	chat        []models.ChatMessage
	generated   *models.DailyPlan

	darkMode      bool
	waterCount    int
	notifications NotificationSettings
	fitConnected  bool

	adminUsers   []models.AdminUserSummary
	adminReviews []models.ReviewEntry

	now func() time.Time
}

func NewSession(backend Backend, generator plan.Generator, local *LocalStore) *Session {
	s := &Session{
		backend:     backend,
		generator:   generator,
		local:       local,
		view:        ViewAuth,
		profileView: ProfileMenu,
		darkMode:    local.DarkMode(),
		notifications: NotificationSettings{
			MealReminders:  true,
			WaterReminders: true,
		},
		now: time.Now,
	}
	s.seedChat()
	return s
}

func (s *Session) seedChat() {
	s.chat = []models.ChatMessage{{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleModel,
		Text:      chatGreeting,
		Timestamp: s.now().UnixMilli(),
	}}
}

// Restore resumes a saved session, routing admins to the dashboard and
// everyone else into the app. Returns false when no session is stored.
func (s *Session) Restore() bool {
	profile := s.local.Profile()
	if profile == nil {
		return false
	}
	s.user = *profile
	if profile.IsAdmin {
		s.view = ViewAdmin
	} else {
		s.view = ViewApp
	}
	return true
}

// Signup creates the account and enters onboarding.
func (s *Session) Signup(ctx context.Context, name, email, password string) error {
	profile, err := s.backend.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}
	s.user = profile
	s.view = ViewOnboarding
	return s.local.SetProfile(profile)
}

// Login routes by what came back: admins to the dashboard, named profiles
// into the app, profiles that never finished setup to onboarding.
func (s *Session) Login(ctx context.Context, email, password string) error {
	profile, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.user = profile
	switch {
	case profile.IsAdmin:
		s.view = ViewAdmin
	case profile.Name != "":
		s.view = ViewApp
	default:
		s.view = ViewOnboarding
	}
	return s.local.SetProfile(profile)
}

// CompleteOnboarding applies the collected answers and enters the app.
func (s *Session) CompleteOnboarding(ctx context.Context, patch models.ProfilePatch) error {
	if err := s.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	s.view = ViewApp
	return nil
}

// Logout clears every piece of client-held state and returns to auth.
func (s *Session) Logout() error {
	s.user = models.UserProfile{}
	s.generated = nil
	s.adminUsers = nil
	s.adminReviews = nil
	s.waterCount = 0
	s.view = ViewAuth
	s.profileView = ProfileMenu
	s.seedChat()
	return s.local.ClearProfile()
}

// UpdateProfile applies a typed patch to the held copy, persists it, and
// syncs it out through the gateway. Changing the dietary preference drops
// any cached generated plan.
func (s *Session) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	patch.Apply(&s.user)
	if patch.DietaryPreference != nil {
		s.generated = nil
	}
	if err := s.local.SetProfile(s.user); err != nil {
		return err
	}
	return s.backend.SyncProfile(ctx, s.user.Email, patch)
}

// SendChatMessage appends the user's message and asks the generator for a
// reply. Free-tier sessions holding freeChatLimit messages are rejected
// before the generator is contacted; a generator failure leaves the
// transcript as it was.
func (s *Session) SendChatMessage(ctx context.Context, text string) error {
	if !s.user.IsPremium && len(s.chat) >= freeChatLimit {
		return ErrChatLimit
	}

	message := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleUser,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}
	s.chat = append(s.chat, message)

	reply, err := s.generator.Advice(ctx, s.chat, s.user)
	if err != nil {
		s.chat = s.chat[:len(s.chat)-1]
		return err
	}

	s.chat = append(s.chat, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleModel,
		Text:      reply,
		Timestamp: s.now().UnixMilli(),
	})
	return nil
}

// GeneratePlan requests a personalized plan. Free-tier sessions are blocked;
// they keep seeing the static sample from CurrentPlan.
func (s *Session) GeneratePlan(ctx context.Context) (*models.DailyPlan, error) {
	if !s.user.IsPremium {
		return nil, ErrPremiumRequired
	}
	generated, err := s.generator.MealPlan(ctx, s.user)
	if err != nil {
		return nil, err
	}
	s.generated = generated
	return generated, nil
}

// CurrentPlan is what the meals screen shows: the generated plan for premium
// accounts that have one, otherwise the static sample for the preference.
func (s *Session) CurrentPlan() models.DailyPlan {
	if s.user.IsPremium && s.generated != nil {
		return *s.generated
	}
	return plan.StaticPlan(s.user.DietaryPreference)
}

// SubmitPayment sends the transaction reference for manual review.
func (s *Session) SubmitPayment(ctx context.Context, transactionID string) error {
	profile, err := s.backend.SubmitPayment(ctx, s.user.Email, transactionID)
	if err != nil {
		return err
	}
	s.user = profile
	return s.local.SetProfile(profile)
}

// RedeemCode redeems a license code, normalizing the input first.
func (s *Session) RedeemCode(ctx context.Context, code string) error {
	profile, err := s.backend.RedeemCode(ctx, s.user.Email, utils.NormalizeCode(code))
	if err != nil {
		return err
	}
	s.user = profile
	return s.local.SetProfile(profile)
}

// RefreshAdminUsers reloads the dashboard listing.
func (s *Session) RefreshAdminUsers(ctx context.Context) error {
	summaries, err := s.backend.AdminUsers(ctx)
	if err != nil {
		return err
	}
	s.adminUsers = summaries
	return nil
}

// RefreshReviews reloads the pending payment reviews. Only meaningful
// online; the queue lives on the server.
func (s *Session) RefreshReviews(ctx context.Context) error {
	entries, err := s.backend.AdminReviews(ctx)
	if err != nil {
		return err
	}
	s.adminReviews = entries
	return nil
}

// ApproveUser grants premium to a user and refreshes the listing.
func (s *Session) ApproveUser(ctx context.Context, email string) error {
	if err := s.backend.ApproveUser(ctx, email); err != nil {
		return err
	}
	return s.RefreshAdminUsers(ctx)
}

func (s *Session) SetDarkMode(enabled bool) error {
	s.darkMode = enabled
	return s.local.SetDarkMode(enabled)
}

func (s *Session) SetProfileView(view ProfileView) {
	s.profileView = view
}

func (s *Session) SetNotifications(settings NotificationSettings) {
	s.notifications = settings
}

func (s *Session) SetFitConnected(connected bool) { s.fitConnected = connected }

func (s *Session) AddWater() { s.waterCount++ }

func (s *Session) View() View { return s.view }

func (s *Session) ProfilePanel() ProfileView { return s.profileView }

func (s *Session) User() models.UserProfile { return s.user }

func (s *Session) Chat() []models.ChatMessage { return s.chat }

func (s *Session) DarkMode() bool { return s.darkMode }

func (s *Session) WaterCount() int { return s.waterCount }

func (s *Session) Notifications() NotificationSettings { return s.notifications }

func (s *Session) FitConnected() bool { return s.fitConnected }

func (s *Session) AdminUsers() []models.AdminUserSummary { return s.adminUsers }

func (s *Session) AdminReviews() []models.ReviewEntry { return s.adminReviews }
