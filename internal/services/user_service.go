package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
	"github.com/Vedantlights/indiapropertys-sub001/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.TokenManager
}

const accessTokenTTL = 20 * time.Hour

// SignUp creates the account (user + profile + free subscription, one
// transaction in the repository) and returns it with a fresh access token.
func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignInResponse, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "email is required"
	}
	if len(req.Password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}
	switch role {
	case models.RoleBuyer, models.RoleSeller, models.RoleAgent:
	default:
		fields["role"] = "must be buyer, seller or agent"
	}
	if len(fields) > 0 {
		return models.SignInResponse{}, models.NewValidationError(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignInResponse{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Password: string(hash),
		Role:     role,
		City:     strings.TrimSpace(req.City),
	})
	if err != nil {
		return models.SignInResponse{}, err
	}

	token, err := s.TokenManager.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	return models.SignInResponse{AccessToken: token, User: user}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err == models.ErrUserNotFound {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.SignInResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	user.Password = ""

	token, err := s.TokenManager.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	return models.SignInResponse{AccessToken: token, User: user}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}
