package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"
)

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, req UpdateProfileRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	verrs := domain.ValidationErrors{}
	if req.FirstName == "" {
		verrs.Add("first_name", "First name is required.")
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.PhotoURL = req.PhotoURL

	if req.OldPassword != "" || req.NewPassword1 != "" || req.NewPassword2 != "" {
		switch {
		case bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil:
			verrs.Add("old_password", "Current password is incorrect.")
		case req.NewPassword1 != req.NewPassword2:
			verrs.Add("new_password2", "Passwords do not match.")
		case len(req.NewPassword1) < 8:
			verrs.Add("new_password1", "Password must be at least 8 characters.")
		default:
			hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword1), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hash)
		}
	}
	if verrs.HasErrors() {
		return verrs
	}

	return s.users.Update(ctx, user)
}
