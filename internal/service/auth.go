package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"
	"gardenhub-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not activated")
)

type authService struct {
	users  repository.UserRepository
	tokens security.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	// An invited account has no password until it is activated.
	if !user.IsActive || user.PasswordHash == "" {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *authService) ActivateAccount(ctx context.Context, token, firstName, lastName, phone, password string) (*domain.User, error) {
	user, err := s.users.GetByActivationToken(ctx, token)
	if err != nil {
		return nil, err
	}

	// A token that leaked onto an already-active account only gets
	// cleaned up; the profile and password stay as they are.
	if user.IsActive {
		user.ActivationToken = nil
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	verrs := domain.ValidationErrors{}
	if firstName == "" {
		verrs.Add("first_name", "First name is required.")
	}
	if len(password) < 8 {
		verrs.Add("password", "Password must be at least 8 characters.")
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.PhoneNumber = phone
	user.PasswordHash = string(hash)
	user.IsActive = true
	// Single use: the token is dropped so the link cannot activate the
	// account a second time.
	user.ActivationToken = nil

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh, security.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	if !user.IsActive {
		return "", "", ErrAccountInactive
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
