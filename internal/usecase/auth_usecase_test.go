package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenwok/internal/infrastructure/oauth"
	"goldenwok/internal/infrastructure/token"
	"goldenwok/pkg/errors"
)

type fakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]bool)}
}

func (b *fakeBlacklist) Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[tokenID] = true
	return nil
}

func (b *fakeBlacklist) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[tokenID], nil
}

func setupAuthTest(t *testing.T) (*AuthUseCase, *fakeUserRepo, *fakeMailer, *fakeBlacklist) {
	t.Helper()

	userRepo := newFakeUserRepo()
	mailer := &fakeMailer{}
	blacklist := newFakeBlacklist()
	jwtService := token.NewJWTService("test-secret", time.Hour)
	verifier := oauth.NewGoogleVerifier("test-client")

	uc := NewAuthUseCase(userRepo, jwtService, blacklist, verifier, mailer, "http://localhost:5173", "Golden Wok")
	return uc, userRepo, mailer, blacklist
}

// tokenFromLink pulls the raw token out of the last path segment of the
// URL embedded in an email body.
func tokenFromLink(t *testing.T, body string) string {
	t.Helper()
	for _, field := range strings.Fields(body) {
		if strings.HasPrefix(field, "http") {
			parts := strings.Split(field, "/")
			return parts[len(parts)-1]
		}
	}
	t.Fatal("no link found in email body")
	return ""
}

func TestRegisterSendsVerification(t *testing.T) {
	uc, userRepo, mailer, _ := setupAuthTest(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterInput{Name: "John Doe", Email: "john@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "john_doe", user.Name, "display name is stored normalized")
	assert.False(t, user.IsEmailVerified)

	stored, err := userRepo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.EmailVerificationToken)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)

	msg := mailer.last()
	require.NotNil(t, msg)
	assert.Equal(t, "john@example.com", msg.To)
	raw := tokenFromLink(t, msg.Text)
	assert.NotEqual(t, stored.EmailVerificationToken, raw, "only the token hash is stored")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "one", Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{Name: "two", Email: "dup@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterDuplicateName(t *testing.T) {
	uc, _, _, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "Jane Roe", Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	// Differs only in case and spacing, normalizes to the same name.
	_, err = uc.Register(ctx, RegisterInput{Name: "JANE  ROE", Email: "b@example.com", Password: "password123"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterRollsBackWhenEmailFails(t *testing.T) {
	uc, userRepo, mailer, _ := setupAuthTest(t)
	ctx := context.Background()

	mailer.sendErr = fmt.Errorf("smtp down")

	_, err := uc.Register(ctx, RegisterInput{Name: "ghost", Email: "ghost@example.com", Password: "password123"})
	require.Error(t, err)

	_, err = userRepo.GetByEmail(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"), "account must be rolled back so the address stays free")
}

func TestVerifyEmailAndLogin(t *testing.T) {
	uc, _, mailer, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "verified", Email: "v@example.com", Password: "password123"})
	require.NoError(t, err)

	// Unverified login fails and resends the link.
	_, _, err = uc.Login(ctx, "v@example.com", "password123")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Len(t, mailer.messages, 2)

	raw := tokenFromLink(t, mailer.last().Text)
	user, err := uc.VerifyEmail(ctx, raw)
	require.NoError(t, err)
	assert.True(t, user.IsEmailVerified)

	// A consumed token is gone.
	_, err = uc.VerifyEmail(ctx, raw)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	loggedIn, sessionToken, err := uc.Login(ctx, "v@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionToken)
	assert.NotNil(t, loggedIn.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, mailer, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "locked", Email: "l@example.com", Password: "password123"})
	require.NoError(t, err)
	_, err = uc.VerifyEmail(ctx, tokenFromLink(t, mailer.last().Text))
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "l@example.com", "wrong-password")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, _, err = uc.Login(ctx, "nobody@example.com", "password123")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLogoutRevokesToken(t *testing.T) {
	uc, _, mailer, blacklist := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "leaver", Email: "leave@example.com", Password: "password123"})
	require.NoError(t, err)
	_, err = uc.VerifyEmail(ctx, tokenFromLink(t, mailer.last().Text))
	require.NoError(t, err)

	_, sessionToken, err := uc.Login(ctx, "leave@example.com", "password123")
	require.NoError(t, err)

	jwtService := token.NewJWTService("test-secret", time.Hour)
	claims, err := jwtService.ValidateToken(sessionToken)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, claims))

	revoked, err := blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestForgotAndResetPassword(t *testing.T) {
	uc, _, mailer, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "forgetful", Email: "f@example.com", Password: "oldpassword1"})
	require.NoError(t, err)
	_, err = uc.VerifyEmail(ctx, tokenFromLink(t, mailer.last().Text))
	require.NoError(t, err)

	require.NoError(t, uc.ForgotPassword(ctx, "f@example.com"))

	raw := tokenFromLink(t, mailer.last().Text)
	_, err = uc.ResetPassword(ctx, raw, "newpassword1")
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "f@example.com", "oldpassword1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, _, err = uc.Login(ctx, "f@example.com", "newpassword1")
	assert.NoError(t, err)

	// A consumed reset token is gone.
	_, err = uc.ResetPassword(ctx, raw, "anotherpass1")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckEmailAndUsername(t *testing.T) {
	uc, userRepo, _, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "Checked User", Email: "c@example.com", Password: "password123"})
	require.NoError(t, err)

	exists, googleSignIn := uc.CheckEmail(ctx, "c@example.com")
	assert.True(t, exists)
	assert.False(t, googleSignIn)

	exists, _ = uc.CheckEmail(ctx, "missing@example.com")
	assert.False(t, exists)

	assert.True(t, uc.CheckUsername(ctx, "checked  user"), "lookup matches on the normalized name")
	assert.False(t, uc.CheckUsername(ctx, "someone else"))

	// Google-linked accounts are flagged so the frontend can block resets.
	google, err := userRepo.GetByEmail(ctx, "c@example.com")
	require.NoError(t, err)
	google.GoogleID = "google-sub"
	require.NoError(t, userRepo.Update(ctx, google))

	_, googleSignIn = uc.CheckEmail(ctx, "c@example.com")
	assert.True(t, googleSignIn)

	err = uc.ForgotPassword(ctx, "c@example.com")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
