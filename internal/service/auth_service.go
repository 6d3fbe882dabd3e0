package service

import (
	"context"
	"time"

	"dept-tracker-be/internal/config"
	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/repository/failover"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
}

type authService struct {
	gateway failover.UserGateway
	cfg     config.AuthConfig
}

func NewAuthService(gateway failover.UserGateway, cfg config.AuthConfig) IAuthService {
	return &authService{
		gateway: gateway,
		cfg:     cfg,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.gateway.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.gateway.GetByUsername(ctx, req.Username)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("username %q is already taken", req.Username)
	}

	role := req.Role
	if role == "" {
		role = entity.UserRoleStaff
	}
	if !entity.IsValidUserRole(role) {
		return nil, apperrors.NewValidation("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	user := entity.User{
		FullName:     req.FullName,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.gateway.Create(ctx, &user); err != nil {
		return nil, err
	}

	return toUserResponse(&user), nil
}

func (s *authService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	return response, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id,
		"name":    user.FullName,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Duration(s.cfg.TokenTTLHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:       u.Id,
		FullName: u.FullName,
		Username: u.Username,
		Role:     u.Role,
	}
}
