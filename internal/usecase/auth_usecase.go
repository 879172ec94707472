package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/internal/infrastructure/mail"
	"goldenwok/internal/infrastructure/oauth"
	"goldenwok/internal/infrastructure/token"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/logger"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = 30 * time.Minute
)

type AuthUseCase struct {
	userRepo       repository.UserRepository
	jwtService     *token.JWTService
	blacklist      token.BlacklistStore
	googleVerifier *oauth.GoogleVerifier
	mailer         mail.Sender
	frontendURL    string
	restaurantName string
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	jwtService *token.JWTService,
	blacklist token.BlacklistStore,
	googleVerifier *oauth.GoogleVerifier,
	mailer mail.Sender,
	frontendURL string,
	restaurantName string,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		jwtService:     jwtService,
		blacklist:      blacklist,
		googleVerifier: googleVerifier,
		mailer:         mailer,
		frontendURL:    frontendURL,
		restaurantName: restaurantName,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a local account and sends the verification email. The
// account only becomes usable after the email is verified. When the email
// cannot be sent the account is rolled back so the address stays free for a
// retry.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		if existing.GoogleID != "" {
			return nil, errors.Conflict("This email is registered with Google sign-in", nil)
		}
		return nil, errors.Conflict("Email is already registered", nil)
	}

	name := entity.NormalizeName(input.Name)
	if name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if _, err := uc.userRepo.GetByName(ctx, name); err == nil {
		return nil, errors.Conflict("Username is already taken", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	rawToken, err := generateToken()
	if err != nil {
		return nil, errors.Internal("Failed to generate verification token", err)
	}

	now := time.Now()
	expiry := now.Add(verificationTokenTTL)
	user := &entity.User{
		ID:                      uuid.New().String(),
		Name:                    name,
		Email:                   input.Email,
		PasswordHash:            string(hash),
		ProfilePicture:          entity.DefaultProfilePicture,
		EmailVerificationToken:  hashToken(rawToken),
		EmailVerificationExpire: &expiry,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.sendVerificationEmail(ctx, user, rawToken); err != nil {
		// Roll the account back so registration can be retried.
		if delErr := uc.userRepo.Delete(ctx, user.ID); delErr != nil {
			logger.Error("Failed to roll back unverifiable account %s: %v", user.ID, delErr)
		}
		return nil, errors.Internal("Failed to send verification email", err)
	}

	return user, nil
}

// VerifyEmail consumes a verification token from the emailed link.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, rawToken string) (*entity.User, error) {
	user, err := uc.userRepo.GetByVerificationToken(ctx, hashToken(rawToken))
	if err != nil {
		return nil, errors.BadRequest("Invalid or expired verification token", err)
	}

	if user.EmailVerificationExpire == nil || time.Now().After(*user.EmailVerificationExpire) {
		return nil, errors.BadRequest("Verification token has expired", nil)
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = ""
	user.EmailVerificationExpire = nil
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a local account and issues a session token. An
// unverified account gets a fresh verification email instead of a session.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.Unauthorized("Invalid credentials", err)
	}

	if user.PasswordHash == "" {
		return nil, "", errors.Unauthorized("This account uses Google sign-in", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.Unauthorized("Invalid credentials", err)
	}

	if !user.IsEmailVerified {
		if err := uc.resendVerification(ctx, user); err != nil {
			logger.Error("Failed to resend verification email to %s: %v", user.Email, err)
		}
		return nil, "", errors.Unauthorized("Email not verified. A new verification link has been sent", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to record last login for %s: %v", user.ID, err)
	}

	sessionToken, err := uc.jwtService.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", errors.Internal("Failed to issue session token", err)
	}

	return user, sessionToken, nil
}

// Logout revokes the presented session token until its natural expiry.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *token.Claims) error {
	if claims.ID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return uc.blacklist.Blacklist(ctx, claims.ID, ttl)
}

// GoogleSignIn verifies a Google ID token and signs the user in, linking
// the Google identity to an existing account with the same email or
// creating a new pre-verified account.
func (uc *AuthUseCase) GoogleSignIn(ctx context.Context, idToken string) (*entity.User, string, error) {
	profile, err := uc.googleVerifier.Verify(ctx, idToken)
	if err != nil {
		return nil, "", errors.Unauthorized("Google sign-in failed", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		if user.GoogleID == "" {
			user.GoogleID = profile.Subject
			user.IsEmailVerified = true
			user.UpdatedAt = time.Now()
			if err := uc.userRepo.Update(ctx, user); err != nil {
				return nil, "", err
			}
		}
	case errors.Is(err, "NOT_FOUND"):
		user, err = uc.createGoogleUser(ctx, profile)
		if err != nil {
			return nil, "", err
		}
	default:
		return nil, "", err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to record last login for %s: %v", user.ID, err)
	}

	sessionToken, err := uc.jwtService.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", errors.Internal("Failed to issue session token", err)
	}

	return user, sessionToken, nil
}

// ForgotPassword emails a short-lived reset link. Google-linked accounts
// have no password to reset.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return errors.NotFound("User", err)
	}

	if user.GoogleID != "" {
		return errors.BadRequest("This account uses Google sign-in and has no password", nil)
	}

	rawToken, err := generateToken()
	if err != nil {
		return errors.Internal("Failed to generate reset token", err)
	}

	expiry := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = hashToken(rawToken)
	user.ResetPasswordExpire = &expiry
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", uc.frontendURL, rawToken)
	msg := &mail.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("%s - Password Reset", uc.restaurantName),
		Text:    fmt.Sprintf("You requested a password reset. Open the link below within 30 minutes to choose a new password:\n\n%s\n\nIf you did not request this, you can ignore this email.", resetURL),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		// Clear the token so a half-issued reset cannot linger.
		user.ResetPasswordToken = ""
		user.ResetPasswordExpire = nil
		if updErr := uc.userRepo.Update(ctx, user); updErr != nil {
			logger.Error("Failed to clear reset token for %s: %v", user.ID, updErr)
		}
		return errors.Internal("Failed to send reset email", err)
	}

	return nil
}

// ResetPassword consumes a reset token and stores the new password.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, rawToken, newPassword string) (*entity.User, error) {
	user, err := uc.userRepo.GetByResetToken(ctx, hashToken(rawToken))
	if err != nil {
		return nil, errors.BadRequest("Invalid or expired reset token", err)
	}

	if user.ResetPasswordExpire == nil || time.Now().After(*user.ResetPasswordExpire) {
		return nil, errors.BadRequest("Reset token has expired", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpire = nil
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckEmail reports whether an email is registered and whether the account
// is Google-linked, for the frontend's pre-flight checks.
func (uc *AuthUseCase) CheckEmail(ctx context.Context, email string) (exists bool, googleSignIn bool) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, false
	}
	return true, user.GoogleID != ""
}

// CheckUsername reports whether a display name is taken, comparing on the
// normalized form.
func (uc *AuthUseCase) CheckUsername(ctx context.Context, name string) bool {
	_, err := uc.userRepo.GetByName(ctx, entity.NormalizeName(name))
	return err == nil
}

func (uc *AuthUseCase) createGoogleUser(ctx context.Context, profile *oauth.Profile) (*entity.User, error) {
	name := entity.NormalizeName(profile.Name)
	if name == "" {
		name = strings.Split(profile.Email, "@")[0]
		name = entity.NormalizeName(name)
	}
	// Display names are unique; disambiguate collisions with a short suffix.
	if _, err := uc.userRepo.GetByName(ctx, name); err == nil {
		name = fmt.Sprintf("%s_%s", name, uuid.New().String()[:8])
	}

	picture := profile.Picture
	if picture == "" {
		picture = entity.DefaultProfilePicture
	}

	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		Name:            name,
		Email:           profile.Email,
		GoogleID:        profile.Subject,
		IsEmailVerified: true,
		ProfilePicture:  picture,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) resendVerification(ctx context.Context, user *entity.User) error {
	rawToken, err := generateToken()
	if err != nil {
		return err
	}

	expiry := time.Now().Add(verificationTokenTTL)
	user.EmailVerificationToken = hashToken(rawToken)
	user.EmailVerificationExpire = &expiry
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uc.sendVerificationEmail(ctx, user, rawToken)
}

func (uc *AuthUseCase) sendVerificationEmail(ctx context.Context, user *entity.User, rawToken string) error {
	verifyURL := fmt.Sprintf("%s/email-verify/%s", uc.frontendURL, rawToken)
	msg := &mail.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("%s - Verify your email", uc.restaurantName),
		Text:    fmt.Sprintf("Welcome to %s!\n\nPlease confirm your email address by opening the link below within 24 hours:\n\n%s", uc.restaurantName, verifyURL),
	}
	return uc.mailer.Send(ctx, msg)
}

// generateToken returns 32 random bytes hex-encoded. Only its SHA-256 hash
// is stored, like any other credential.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
