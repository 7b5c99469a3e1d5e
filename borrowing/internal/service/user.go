package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/auth"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) Register(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.NewUser{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
}

// Login exchanges email and password for a signed access token.
func (s *Service) Login(ctx context.Context, req model.TokenRequest) (model.TokenResponse, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.TokenResponse{}, errs.ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return model.TokenResponse{}, errs.ErrInvalidCredentials
	}
	token, err := auth.NewToken(s.auth, auth.Profile{UserID: u.ID, Email: u.Email, IsStaff: u.IsStaff}, s.now())
	if err != nil {
		return model.TokenResponse{}, errors.Wrap(err, "sign token")
	}
	return model.TokenResponse{Access: token}, nil
}

func (s *Service) Me(ctx context.Context, actor model.Actor) (model.User, error) {
	return s.repo.GetUser(ctx, actor.UserID)
}

func (s *Service) UpdateMe(ctx context.Context, actor model.Actor, patch model.UserPatch) (model.User, error) {
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, errors.Wrap(err, "hash password")
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	return s.repo.UpdateUser(ctx, actor.UserID, patch)
}
