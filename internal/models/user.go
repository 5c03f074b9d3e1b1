package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Goal string

const (
	GoalLoseWeight Goal = "Lose Weight"
	GoalMaintain   Goal = "Maintain"
	GoalGainMuscle Goal = "Gain Muscle"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "Sedentary"
	ActivityLight     ActivityLevel = "Lightly Active"
	ActivityModerate  ActivityLevel = "Moderately Active"
	ActivityActive    ActivityLevel = "Very Active"
)

type DietaryPreference string

const (
	DietNone       DietaryPreference = "None"
	DietVegan      DietaryPreference = "Vegan"
	DietVegetarian DietaryPreference = "Vegetarian"
	DietKeto       DietaryPreference = "Keto"
	DietPaleo      DietaryPreference = "Paleo"
	DietHalal      DietaryPreference = "Halal"
)

type PaymentStatus string

const (
	PaymentNone     PaymentStatus = "none"
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
)

// UserProfile is the client-visible view of an account. The server owns the
// authoritative copy inside a UserRecord; clients always hold it by value.
// Invariant: IsPremium implies PaymentStatus == PaymentApproved, and a pending
// status implies a non-empty LastTransactionID.
type UserProfile struct {
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Age               int               `json:"age"`
	Gender            Gender            `json:"gender"`
	HeightCM          float64           `json:"height"`
	WeightKG          float64           `json:"weight"`
	Goal              Goal              `json:"goal"`
	ActivityLevel     ActivityLevel     `json:"activityLevel"`
	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	Allergies         string            `json:"allergies"`
	IsPremium         bool              `json:"isPremium"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
	LastTransactionID string            `json:"lastTransactionId,omitempty"`
	IsAdmin           bool              `json:"isAdmin,omitempty"`
}

// DefaultProfile returns the profile a fresh signup starts with.
func DefaultProfile(name, email string) UserProfile {
	return UserProfile{
		Name:              name,
		Email:             email,
		Age:               25,
		Gender:            GenderMale,
		HeightCM:          175,
		WeightKG:          70,
		Goal:              GoalLoseWeight,
		ActivityLevel:     ActivityModerate,
		DietaryPreference: DietNone,
		IsPremium:         false,
		PaymentStatus:     PaymentNone,
	}
}

// UserRecord is the server-side account row: credentials plus profile.
// Passwords are stored and compared in plaintext; this backend has no real
// authentication and is not meant to.
type UserRecord struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Profile   UserProfile `json:"profile"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// AdminUserSummary is the reduced row the admin dashboard lists.
type AdminUserSummary struct {
	Email             string        `json:"email"`
	Name              string        `json:"name"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	LastTransactionID string        `json:"lastTransactionId"`
	IsPremium         bool          `json:"isPremium"`
}

// Summary reduces a record to its admin listing row.
func (r *UserRecord) Summary() AdminUserSummary {
	return AdminUserSummary{
		Email:             r.Email,
		Name:              r.Profile.Name,
		PaymentStatus:     r.Profile.PaymentStatus,
		LastTransactionID: r.Profile.LastTransactionID,
		IsPremium:         r.Profile.IsPremium,
	}
}

// ProfilePatch is a partial profile update: only non-nil fields are applied.
// One typed field per recognized key replaces the original UI's stringly-typed
// field updates.
type ProfilePatch struct {
	Name              *string            `json:"name,omitempty"`
	Age               *int               `json:"age,omitempty"`
	Gender            *Gender            `json:"gender,omitempty"`
	HeightCM          *float64           `json:"height,omitempty"`
	WeightKG          *float64           `json:"weight,omitempty"`
	Goal              *Goal              `json:"goal,omitempty"`
	ActivityLevel     *ActivityLevel     `json:"activityLevel,omitempty"`
	DietaryPreference *DietaryPreference `json:"dietaryPreference,omitempty"`
	Allergies         *string            `json:"allergies,omitempty"`
	IsPremium         *bool              `json:"isPremium,omitempty"`
	PaymentStatus     *PaymentStatus     `json:"paymentStatus,omitempty"`
	LastTransactionID *string            `json:"lastTransactionId,omitempty"`
}

// Apply overwrites every field the patch carries, leaving the rest untouched.
func (p ProfilePatch) Apply(profile *UserProfile) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Age != nil {
		profile.Age = *p.Age
	}
	if p.Gender != nil {
		profile.Gender = *p.Gender
	}
	if p.HeightCM != nil {
		profile.HeightCM = *p.HeightCM
	}
	if p.WeightKG != nil {
		profile.WeightKG = *p.WeightKG
	}
	if p.Goal != nil {
		profile.Goal = *p.Goal
	}
	if p.ActivityLevel != nil {
		profile.ActivityLevel = *p.ActivityLevel
	}
	if p.DietaryPreference != nil {
		profile.DietaryPreference = *p.DietaryPreference
	}
	if p.Allergies != nil {
		profile.Allergies = *p.Allergies
	}
	if p.IsPremium != nil {
		profile.IsPremium = *p.IsPremium
	}
	if p.PaymentStatus != nil {
		profile.PaymentStatus = *p.PaymentStatus
	}
	if p.LastTransactionID != nil {
		profile.LastTransactionID = *p.LastTransactionID
	}
}

// PatchFromProfile builds a full patch from a profile snapshot, used when the
// client mirrors its whole state to the server.
func PatchFromProfile(profile UserProfile) ProfilePatch {
	return ProfilePatch{
		Name:              &profile.Name,
		Age:               &profile.Age,
		Gender:            &profile.Gender,
		HeightCM:          &profile.HeightCM,
		WeightKG:          &profile.WeightKG,
		Goal:              &profile.Goal,
		ActivityLevel:     &profile.ActivityLevel,
		DietaryPreference: &profile.DietaryPreference,
		Allergies:         &profile.Allergies,
		IsPremium:         &profile.IsPremium,
		PaymentStatus:     &profile.PaymentStatus,
		LastTransactionID: &profile.LastTransactionID,
	}
}
