// Package cli is the interactive terminal front end: a read-eval-print loop
// over the session controller, with the sync gateway underneath.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Mag-Tataho/heAIthy/internal/client"
	"github.com/Mag-Tataho/heAIthy/internal/models"
	"github.com/Mag-Tataho/heAIthy/pkg/utils"
)

type App struct {
	session *client.Session
	gateway *client.Gateway
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(session *client.Session, gateway *client.Gateway) *App {
	return &App{
		session: session,
		gateway: gateway,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// status renders the prompt suffix: who is logged in and which mode the
// gateway last observed.
func (a *App) status() string {
	s := ""
	if email := a.session.User().Email; email != "" {
		s = email + " "
	}
	if mode := a.gateway.Mode(); mode != client.ModeUnknown {
		s += string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "heAIthy CLI (type 'help' for commands)")
	if a.session.Restore() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Name)
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) view() client.View { return a.session.View() }

func (a *App) signup(ctx context.Context) error {
	name, err := promptText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	if err := a.session.Signup(ctx, name, email, password); err != nil {
		fmt.Fprintln(a.out, "Signup failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Account created. Run 'onboard' to finish setting up your profile.")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}
	switch a.session.View() {
	case client.ViewAdmin:
		fmt.Fprintln(a.out, "Logged in as administrator. Run 'users' to see accounts.")
	case client.ViewOnboarding:
		fmt.Fprintln(a.out, "Logged in. Run 'onboard' to finish setting up your profile.")
	default:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Name)
	}
	return nil
}

func (a *App) logout() error {
	if err := a.session.Logout(); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// onboard walks the new user through the questions the profile needs and
// applies them in one patch.
func (a *App) onboard(ctx context.Context) error {
	user := a.session.User()
	patch := models.ProfilePatch{}

	if user.Name == "" {
		name, err := promptText(a.reader, "Your name", a.out)
		if err != nil {
			return err
		}
		patch.Name = &name
	}

	age, err := promptNumber(a.reader, "Age", float64(user.Age), a.out)
	if err != nil {
		return err
	}
	ageInt := int(age)
	patch.Age = &ageInt

	gender, err := promptChoice(a.reader, "Gender",
		[]string{"Male", "Female", "Other"}, string(user.Gender), a.out)
	if err != nil {
		return err
	}
	g := models.Gender(gender)
	patch.Gender = &g

	height, err := promptNumber(a.reader, "Height in cm", user.HeightCM, a.out)
	if err != nil {
		return err
	}
	patch.HeightCM = &height

	weight, err := promptNumber(a.reader, "Weight in kg", user.WeightKG, a.out)
	if err != nil {
		return err
	}
	patch.WeightKG = &weight

	goal, err := promptChoice(a.reader, "Goal",
		[]string{"Lose Weight", "Maintain", "Gain Muscle"}, string(user.Goal), a.out)
	if err != nil {
		return err
	}
	gl := models.Goal(goal)
	patch.Goal = &gl

	activity, err := promptChoice(a.reader, "Activity level",
		[]string{"Sedentary", "Lightly Active", "Moderately Active", "Very Active"},
		string(user.ActivityLevel), a.out)
	if err != nil {
		return err
	}
	al := models.ActivityLevel(activity)
	patch.ActivityLevel = &al

	if err := a.askDiet(&patch, user); err != nil {
		return err
	}

	if err := a.session.CompleteOnboarding(ctx, patch); err != nil {
		fmt.Fprintln(a.out, "Could not save your profile:", err)
		return err
	}
	fmt.Fprintln(a.out, "All set! Type 'plan' to see today's meals.")
	return nil
}

func (a *App) askDiet(patch *models.ProfilePatch, user models.UserProfile) error {
	diet, err := promptChoice(a.reader, "Dietary preference",
		[]string{"None", "Vegan", "Vegetarian", "Keto", "Paleo", "Halal"},
		string(user.DietaryPreference), a.out)
	if err != nil {
		return err
	}
	d := models.DietaryPreference(diet)
	patch.DietaryPreference = &d

	allergies, err := promptText(a.reader, "Allergies (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if allergies != "" {
		patch.Allergies = &allergies
	}
	return nil
}

// diet re-runs only the dietary questions from onboarding.
func (a *App) diet(ctx context.Context) error {
	patch := models.ProfilePatch{}
	if err := a.askDiet(&patch, a.session.User()); err != nil {
		return err
	}
	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		fmt.Fprintln(a.out, "Could not save your preferences:", err)
		return err
	}
	fmt.Fprintln(a.out, "Preferences saved.")
	return nil
}

func (a *App) profile() error {
	user := a.session.User()
	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	fmt.Fprintf(a.out, "  Age %d, %s, %.0f cm, %.1f kg\n", user.Age, user.Gender, user.HeightCM, user.WeightKG)
	fmt.Fprintf(a.out, "  Goal: %s, activity: %s, diet: %s\n", user.Goal, user.ActivityLevel, user.DietaryPreference)
	if user.Allergies != "" {
		fmt.Fprintf(a.out, "  Allergies: %s\n", user.Allergies)
	}
	tier := "Free"
	if user.IsPremium {
		tier = "Premium"
	} else if user.PaymentStatus == models.PaymentPending {
		tier = "Free (upgrade pending review)"
	}
	fmt.Fprintf(a.out, "  Tier: %s\n", tier)
	return nil
}

func (a *App) bmi() error {
	user := a.session.User()
	value := utils.BMI(user.HeightCM, user.WeightKG)
	fmt.Fprintf(a.out, "BMI %.1f (%s)\n", value, utils.BMIStatus(value))
	return nil
}

func (a *App) plan() error {
	printPlan(a.out, a.session.CurrentPlan())
	return nil
}

func (a *App) generate(ctx context.Context) error {
	generated, err := a.session.GeneratePlan(ctx)
	if err != nil {
		if errors.Is(err, client.ErrPremiumRequired) {
			fmt.Fprintln(a.out, "Personalized plans need Premium. Run 'upgrade' or 'redeem <code>'.")
			return err
		}
		fmt.Fprintln(a.out, "Plan generation failed:", err)
		return err
	}
	printPlan(a.out, *generated)
	return nil
}

func (a *App) chat(ctx context.Context, text string) error {
	if text == "" {
		fmt.Fprintln(a.out, "Usage: chat <message>")
		return nil
	}
	if err := a.session.SendChatMessage(ctx, text); err != nil {
		if errors.Is(err, client.ErrChatLimit) {
			fmt.Fprintln(a.out, "You have used your free messages. Run 'upgrade' for unlimited chat.")
			return err
		}
		fmt.Fprintln(a.out, "Chat failed:", err)
		return err
	}
	history := a.session.Chat()
	fmt.Fprintln(a.out, "AI:", history[len(history)-1].Text)
	return nil
}

func (a *App) water() error {
	a.session.AddWater()
	fmt.Fprintf(a.out, "Water today: %d glasses\n", a.session.WaterCount())
	return nil
}

func (a *App) darkmode() error {
	enabled := !a.session.DarkMode()
	if err := a.session.SetDarkMode(enabled); err != nil {
		return err
	}
	if enabled {
		fmt.Fprintln(a.out, "Dark mode on.")
	} else {
		fmt.Fprintln(a.out, "Dark mode off.")
	}
	return nil
}

func (a *App) upgrade(ctx context.Context) error {
	txID, err := promptText(a.reader, "Transaction reference from your payment", a.out)
	if err != nil {
		return err
	}
	if err := a.session.SubmitPayment(ctx, txID); err != nil {
		fmt.Fprintln(a.out, "Could not submit payment:", err)
		return err
	}
	fmt.Fprintln(a.out, "Payment submitted. Premium unlocks once an administrator approves it.")
	return nil
}

func (a *App) redeem(ctx context.Context, code string) error {
	if code == "" {
		fmt.Fprintln(a.out, "Usage: redeem <code>")
		return nil
	}
	if err := a.session.RedeemCode(ctx, code); err != nil {
		fmt.Fprintln(a.out, "Code not accepted:", err)
		return err
	}
	fmt.Fprintln(a.out, "Premium unlocked. Enjoy!")
	return nil
}

func (a *App) users(ctx context.Context) error {
	if err := a.session.RefreshAdminUsers(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load users:", err)
		return err
	}
	for _, u := range a.session.AdminUsers() {
		tier := "free"
		if u.IsPremium {
			tier = "premium"
		} else if u.PaymentStatus == models.PaymentPending {
			tier = "PENDING REVIEW"
		}
		fmt.Fprintf(a.out, "%-30s %-20s %s\n", u.Email, u.Name, tier)
	}
	return nil
}

func (a *App) reviews(ctx context.Context) error {
	if err := a.session.RefreshReviews(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load reviews:", err)
		return err
	}
	entries := a.session.AdminReviews()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No payments waiting for review.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-30s tx %-15s code %s (%s)\n",
			e.Email, e.TransactionID, e.LicenseCode, e.SubmittedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) approve(ctx context.Context, email string) error {
	if email == "" {
		fmt.Fprintln(a.out, "Usage: approve <email>")
		return nil
	}
	if err := a.session.ApproveUser(ctx, email); err != nil {
		fmt.Fprintln(a.out, "Approval failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "%s is now Premium.\n", email)
	return nil
}

func printPlan(w io.Writer, day models.DailyPlan) {
	fmt.Fprintln(w, day.Day)
	printMeal(w, "Breakfast", day.Breakfast)
	printMeal(w, "Lunch", day.Lunch)
	printMeal(w, "Dinner", day.Dinner)
	printMeal(w, "Snack", day.Snack)
	t := day.TotalMacros
	fmt.Fprintf(w, "Totals: %d kcal, %dg protein, %dg carbs, %dg fats\n",
		t.Calories, t.Protein, t.Carbs, t.Fats)
}

func printMeal(w io.Writer, label string, meal models.MealItem) {
	fmt.Fprintf(w, "  %-10s %s (%d kcal)\n", label, meal.Name, meal.Calories)
	fmt.Fprintf(w, "             %s\n", meal.Description)
}
