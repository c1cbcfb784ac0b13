// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"feature-prefs-be/internal/dto"
	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/repository/specification"
	"feature-prefs-be/internal/repository/unitofwork"

	"feature-prefs-be/pkg/events"
	pktNats "feature-prefs-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	accessTokenExpiry := time.Hour * 24

	claims := jwt.MapClaims{
		"user_id": user.Id,
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string

	// Refresh tokens only for "remember me" sessions.
	if req.RememberMe {
		rawRefreshToken = uuid.New().String()

		hasher := sha256.New()
		hasher.Write([]byte(rawRefreshToken))
		tokenHash := hex.EncodeToString(hasher.Sum(nil))

		refreshTokenEntity := &entity.UserRefreshToken{
			UserId:    user.Id,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}
		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, err
		}
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"device":  userAgent,
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		_ = s.eventPublisher.Publish(ctx, event)
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hasher := sha256.New()
	hasher.Write([]byte(refreshToken))
	tokenHash := hex.EncodeToString(hasher.Sum(nil))

	return uow.UserRepository().RevokeRefreshTokenByHash(ctx, tokenHash)
}
