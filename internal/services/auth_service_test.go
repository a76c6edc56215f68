package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kilimopesa_backend/internal/auth"
	"kilimopesa_backend/internal/models"
	"kilimopesa_backend/internal/pkg/email"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/internal/services/dto"
	"kilimopesa_backend/pkg/apperrors"
)

// The repositories ignore the db handle in these fakes, so the service can
// run against nil *gorm.DB.

type fakeUserRepo struct {
	users  map[string]*models.User // keyed by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, emailAddr string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == emailAddr {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = string(rune('a' + r.nextID))
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) SetVerificationCode(_ *gorm.DB, userID, code string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationCode = &code
	return nil
}

func (r *fakeUserRepo) MarkEmailVerified(_ *gorm.DB, userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsEmailVerified = true
	u.IsActive = true
	u.VerificationCode = nil
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Create(_ *gorm.DB, session *models.Session) error {
	r.nextID++
	session.ID = string(rune('A' + r.nextID))
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) FindByID(_ *gorm.DB, id string) (*models.Session, error) {
	if s, ok := r.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrSessionNotFound
}

func (r *fakeSessionRepo) DeleteByID(_ *gorm.DB, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return repositories.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteByUserID(_ *gorm.DB, userID string) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ *gorm.DB) error { return nil }

type fakeSender struct {
	codes map[string]string
	fail  bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{codes: make(map[string]string)}
}

func (s *fakeSender) Send(_ *email.Email) error {
	if s.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (s *fakeSender) SendVerificationCode(to, _, code string) error {
	if s.fail {
		return errors.New("smtp down")
	}
	s.codes[to] = code
	return nil
}

const testSecret = "unit-test-secret"

func newTestAuthService(users *fakeUserRepo, sessions *fakeSessionRepo, sender *fakeSender) AuthService {
	return NewAuthService(users, sessions, sender, testSecret, time.Hour)
}

func TestRegister_CreatesInactiveUserAndSendsCode(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	sender := newFakeSender()
	svc := newTestAuthService(users, sessions, sender)

	resp, err := svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Username: "wanjiku",
		Email:    "wanjiku@test.co.ke",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "wanjiku", resp.Username)
	assert.Equal(t, "wanjiku@test.co.ke", resp.Email)

	stored, err := users.FindByEmail(nil, "wanjiku@test.co.ke")
	require.NoError(t, err)
	assert.False(t, stored.IsEmailVerified)
	assert.False(t, stored.IsActive)
	require.NotNil(t, stored.VerificationCode)
	assert.Len(t, *stored.VerificationCode, auth.VerificationCodeLength)
	assert.Equal(t, *stored.VerificationCode, sender.codes["wanjiku@test.co.ke"])
	assert.NotEqual(t, "password123", stored.PasswordHash, "Password must be stored hashed")
	assert.Empty(t, sessions.sessions, "Registration must not open a session")
}

func TestRegister_DuplicateReportsFields(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, newFakeSessionRepo(), newFakeSender())

	_, err := svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Username: "wanjiku", Email: "wanjiku@test.co.ke", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Username: "wanjiku", Email: "other@test.co.ke", Password: "password123",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Details, "username")
	assert.NotContains(t, appErr.Details, "email")
}

func TestRegister_MailFailureRollsBack(t *testing.T) {
	users := newFakeUserRepo()
	sender := newFakeSender()
	sender.fail = true
	svc := newTestAuthService(users, newFakeSessionRepo(), sender)

	_, err := svc.Register(context.Background(), nil, &dto.RegisterRequest{
		Username: "wanjiku", Email: "wanjiku@test.co.ke", Password: "password123",
	})
	require.Error(t, err)

	_, err = users.FindByEmail(nil, "wanjiku@test.co.ke")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound, "Account must not survive failed mail delivery")
}

func TestVerifyEmail_FullScenario(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	sender := newFakeSender()
	svc := newTestAuthService(users, sessions, sender)
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "wanjiku", Email: "wanjiku@test.co.ke", Password: "password123",
	})
	require.NoError(t, err)
	firstCode := sender.codes["wanjiku@test.co.ke"]

	// Wrong code is rejected, account stays unverified.
	wrong := "000000"
	if wrong == firstCode {
		wrong = "999999"
	}
	_, err = svc.VerifyEmail(ctx, nil, &dto.VerifyEmailRequest{Email: "wanjiku@test.co.ke", Code: wrong})
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationCode)

	// Resend replaces the code.
	_, err = svc.ResendVerification(ctx, nil, &dto.ResendVerificationRequest{Email: "wanjiku@test.co.ke"})
	require.NoError(t, err)
	newCode := sender.codes["wanjiku@test.co.ke"]

	if firstCode != newCode {
		_, err = svc.VerifyEmail(ctx, nil, &dto.VerifyEmailRequest{Email: "wanjiku@test.co.ke", Code: firstCode})
		assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationCode, "Superseded code must stop working")
	}

	// The current code verifies and logs in.
	resp, err := svc.VerifyEmail(ctx, nil, &dto.VerifyEmailRequest{Email: "wanjiku@test.co.ke", Code: newCode})
	require.NoError(t, err)
	assert.True(t, resp.User.IsEmailVerified)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Len(t, sessions.sessions, 1)

	claims, err := auth.ParseSessionToken(resp.AccessToken, testSecret)
	require.NoError(t, err)
	stored, _ := users.FindByEmail(nil, "wanjiku@test.co.ke")
	assert.Equal(t, stored.ID, claims.UserID)
	assert.True(t, stored.IsActive)
	assert.Nil(t, stored.VerificationCode, "Code must be cleared after use")

	// Verifying again fails with the ordered "already verified" error.
	_, err = svc.VerifyEmail(ctx, nil, &dto.VerifyEmailRequest{Email: "wanjiku@test.co.ke", Code: newCode})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyVerified)
}

func TestVerifyEmail_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeSessionRepo(), newFakeSender())

	_, err := svc.VerifyEmail(context.Background(), nil, &dto.VerifyEmailRequest{
		Email: "ghost@test.co.ke", Code: "123456",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLogin_Paths(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	sender := newFakeSender()
	svc := newTestAuthService(users, sessions, sender)
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "wanjiku", Email: "wanjiku@test.co.ke", Password: "password123",
	})
	require.NoError(t, err)

	// Unverified account: correct password is still a 403.
	_, err = svc.Login(ctx, nil, &dto.LoginRequest{Email: "wanjiku@test.co.ke", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailNotVerified)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Login(ctx, nil, &dto.LoginRequest{Email: "wanjiku@test.co.ke", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, nil, &dto.LoginRequest{Email: "ghost@test.co.ke", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// After verification login succeeds.
	code := sender.codes["wanjiku@test.co.ke"]
	_, err = svc.VerifyEmail(ctx, nil, &dto.VerifyEmailRequest{Email: "wanjiku@test.co.ke", Code: code})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, nil, &dto.LoginRequest{Email: "wanjiku@test.co.ke", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLogout_RemovesSession(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	sender := newFakeSender()
	svc := newTestAuthService(users, sessions, sender)
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "wanjiku", Email: "wanjiku@test.co.ke", Password: "password123",
	})
	require.NoError(t, err)
	resp, err := svc.VerifyEmail(ctx, nil, &dto.VerifyEmailRequest{
		Email: "wanjiku@test.co.ke", Code: sender.codes["wanjiku@test.co.ke"],
	})
	require.NoError(t, err)

	claims, err := auth.ParseSessionToken(resp.AccessToken, testSecret)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, nil, claims.SessionID))
	assert.Empty(t, sessions.sessions)

	// Logging out an already-dead session is a no-op.
	assert.NoError(t, svc.Logout(ctx, nil, claims.SessionID))
}
