package entity

import (
	"regexp"
	"strings"
	"time"
)

const DefaultProfilePicture = "https://storage.googleapis.com/goldenwok-public/defaults/profile.png"

type User struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`

	IsAdmin         bool `json:"is_admin" firestore:"isAdmin"`
	IsEmailVerified bool `json:"is_email_verified" firestore:"isEmailVerified"`

	// GoogleID is the OAuth subject identifier, empty for local-only accounts.
	GoogleID       string `json:"google_id,omitempty" firestore:"googleId"`
	ProfilePicture string `json:"profile_picture" firestore:"profilePicture"`

	// Token fields deliberately carry no firestore omitempty so that a full
	// document write clears them once consumed.
	EmailVerificationToken  string     `json:"-" firestore:"emailVerificationToken"`
	EmailVerificationExpire *time.Time `json:"-" firestore:"emailVerificationExpire"`
	ResetPasswordToken      string     `json:"-" firestore:"resetPasswordToken"`
	ResetPasswordExpire     *time.Time `json:"-" firestore:"resetPasswordExpire"`

	LastLogin *time.Time `json:"last_login,omitempty" firestore:"lastLogin"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Profile is the subset of User safe to hand to any caller.
type Profile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IsAdmin         bool      `json:"is_admin"`
	ProfilePicture  string    `json:"profile_picture"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		IsAdmin:         u.IsAdmin,
		ProfilePicture:  u.ProfilePicture,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName canonicalizes a display name: trimmed, whitespace runs
// replaced with underscores, lowercased. Uniqueness checks and lookups
// operate on the normalized form.
func NormalizeName(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_"))
}
