package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"kilimopesa_backend/internal/auth"
	"kilimopesa_backend/internal/logger"
	"kilimopesa_backend/internal/models"
	"kilimopesa_backend/internal/pkg/email"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/internal/services/dto"
	"kilimopesa_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, db *gorm.DB, req *dto.VerifyEmailRequest) (*dto.AuthResponse, error)
	ResendVerification(ctx context.Context, db *gorm.DB, req *dto.ResendVerificationRequest) (*dto.ResendVerificationResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, db *gorm.DB, sessionID string) error
	GetCurrentUser(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	emailSender email.Sender
	tokenSecret string
	sessionTTL  time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	emailSender email.Sender,
	tokenSecret string,
	sessionTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		emailSender: emailSender,
		tokenSecret: tokenSecret,
		sessionTTL:  sessionTTL,
	}
}

// Register creates an inactive account and mails a six-digit verification
// code. If the mail cannot be delivered the account is removed again so the
// address stays free for a retry.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	code, err := auth.GenerateVerificationCode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		IsEmailVerified:  false,
		IsActive:         false,
		VerificationCode: &code,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			details := map[string]string{}
			if existing, ferr := s.userRepo.FindByEmail(db, req.Email); ferr == nil && existing != nil {
				details["email"] = "A user with this email already exists"
			}
			if existing, ferr := s.userRepo.FindByUsername(db, req.Username); ferr == nil && existing != nil {
				details["username"] = "A user with this username already exists"
			}
			return nil, apperrors.ValidationError(details)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailSender.SendVerificationCode(user.Email, user.Username, code); err != nil {
		logger.CtxError(ctx, "failed to send verification email, rolling back registration",
			"email", user.Email, "error", err)
		if delErr := s.userRepo.Delete(db, user.ID); delErr != nil {
			logger.CtxError(ctx, "failed to roll back unverified user", "user_id", user.ID, "error", delErr)
		}
		return nil, apperrors.ErrDependencyFailure(err, "registration", "Failed to send verification email. Please try again.")
	}

	logger.CtxInfo(ctx, "user registered, verification pending", "user_id", user.ID, "email", user.Email)

	return &dto.RegisterResponse{
		Email:    user.Email,
		Username: user.Username,
		Message:  "Registration successful. Please check your email for the verification code.",
	}, nil
}

// VerifyEmail checks the submitted code and, on success, activates the
// account and opens a session so the client is logged in immediately.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, db *gorm.DB, req *dto.VerifyEmailRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return nil, apperrors.ErrEmailAlreadyVerified
	}
	if user.VerificationCode == nil {
		return nil, apperrors.ErrNoVerificationCode
	}
	if *user.VerificationCode != strings.TrimSpace(req.Code) {
		return nil, apperrors.ErrInvalidVerificationCode
	}

	if err := s.userRepo.MarkEmailVerified(db, user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsEmailVerified = true
	user.IsActive = true
	user.VerificationCode = nil

	token, err := s.openSession(ctx, db, user)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "email verified", "user_id", user.ID)

	return &dto.AuthResponse{
		Message:     "Email verified successfully.",
		User:        dto.NewUserResponse(user),
		AccessToken: token,
	}, nil
}

// ResendVerification replaces any previous code with a fresh one. The old
// code stops working as soon as the new one is stored.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, db *gorm.DB, req *dto.ResendVerificationRequest) (*dto.ResendVerificationResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return nil, apperrors.ErrEmailAlreadyVerified
	}

	code, err := auth.GenerateVerificationCode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetVerificationCode(db, user.ID, code); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailSender.SendVerificationCode(user.Email, user.Username, code); err != nil {
		logger.CtxError(ctx, "failed to resend verification email", "user_id", user.ID, "error", err)
		return nil, apperrors.ErrDependencyFailure(err, "verification", "Failed to send verification email. Please try again.")
	}

	return &dto.ResendVerificationResponse{
		Email:   user.Email,
		Message: "A new verification code has been sent to your email.",
	}, nil
}

// Login authenticates by email and password. Unknown addresses and wrong
// passwords yield the same response so accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	token, err := s.openSession(ctx, db, user)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return &dto.AuthResponse{
		Message:     "Login successful.",
		User:        dto.NewUserResponse(user),
		AccessToken: token,
	}, nil
}

// Logout deletes the session row. The token becomes useless even though its
// signature stays valid until expiry.
func (s *AuthServiceImpl) Logout(ctx context.Context, db *gorm.DB, sessionID string) error {
	if err := s.sessionRepo.DeleteByID(db, sessionID); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "session closed", "session_id", sessionID)
	return nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthServiceImpl) openSession(ctx context.Context, db *gorm.DB, user *models.User) (string, error) {
	session := &models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return "", apperrors.InternalError(err)
	}

	token, err := auth.GenerateSessionToken(user.ID, session.ID, s.tokenSecret, session.ExpiresAt)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}
