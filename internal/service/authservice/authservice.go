package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidRole        = errors.New("role must be donor or admin")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.Account, error) {
	if role != domain.RoleDonor && role != domain.RoleAdmin {
		return nil, ErrInvalidRole
	}
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	account := &domain.Account{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hashedPassword,
	}
	newAccount, err := s.userRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("email", email), zap.String("role", string(role)))
	return newAccount, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || account == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("email", email))
	return account, nil
}

func (s *Service) GenerateToken(accountID int, role domain.Role) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(accountID, string(role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
