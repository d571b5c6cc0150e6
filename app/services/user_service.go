package services

import (
	"strings"
	"worksuite/app/errs"
	"worksuite/app/models"
	"worksuite/app/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) Register(email, password, displayName string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, errs.Validation("email", "required")
	}
	if password == "" {
		return nil, errs.Validation("password", "required")
	}
	if n, err := s.users.CountByEmail(email); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, errs.Validation("email", "already registered")
	}
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: string(hash), DisplayName: displayName}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}
