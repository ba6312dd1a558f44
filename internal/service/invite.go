package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/repository"
)

type inviteService struct {
	users   repository.UserRepository
	emails  EmailService
	baseURL string
}

func NewInviteService(users repository.UserRepository, emails EmailService, baseURL string) InviteService {
	return &inviteService{
		users:   users,
		emails:  emails,
		baseURL: baseURL,
	}
}

// ResolveOrInvite maps each email to a user account, creating inactive
// placeholder accounts for addresses that have none. Resolving the same
// address twice yields the same account: the second call finds the
// placeholder and tags it Existing, so no duplicate invitation goes out.
func (s *inviteService) ResolveOrInvite(ctx context.Context, emails []string, inviter *domain.User) ([]domain.ResolvedUser, error) {
	verrs := domain.ValidationErrors{}
	normalized := make([]string, 0, len(emails))
	seen := make(map[string]bool)
	for _, raw := range emails {
		email := domain.NormalizeEmail(raw)
		if email == "" || seen[email] {
			continue
		}
		if _, err := mail.ParseAddress(email); err != nil {
			verrs.Add("emails", fmt.Sprintf("'%s' is not a valid email address", raw))
			continue
		}
		seen[email] = true
		normalized = append(normalized, email)
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	resolved := make([]domain.ResolvedUser, 0, len(normalized))
	for _, email := range normalized {
		ru, err := s.resolveOne(ctx, email)
		if err != nil {
			return nil, err
		}
		if ru.Invited {
			if err := s.emails.SendInvitation(ctx, email, inviter.FullName(), s.activationURL(ru.Token)); err != nil {
				// The account exists either way; the invitee can still be
				// re-invited or activated later.
				logger.Error("failed to send invitation email", "email", email, "error", err)
			}
		}
		resolved = append(resolved, ru)
	}
	return resolved, nil
}

func (s *inviteService) resolveOne(ctx context.Context, email string) (domain.ResolvedUser, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return domain.ResolvedUser{User: *user, Invited: false}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.ResolvedUser{}, err
	}

	token := uuid.New().String()
	created := &domain.User{
		Email:           email,
		IsActive:        false,
		ActivationToken: &token,
	}
	if err := s.users.Create(ctx, created); err != nil {
		// A concurrent resolution of the same address may have created
		// the account between our lookup and insert; the unique email
		// constraint turns that race into a fetch.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			existing, ferr := s.users.GetByEmail(ctx, email)
			if ferr != nil {
				return domain.ResolvedUser{}, ferr
			}
			return domain.ResolvedUser{User: *existing, Invited: false}, nil
		}
		return domain.ResolvedUser{}, err
	}
	return domain.ResolvedUser{User: *created, Invited: true, Token: token}, nil
}

func (s *inviteService) activationURL(token string) string {
	return fmt.Sprintf("%s/activate/%s", s.baseURL, token)
}
