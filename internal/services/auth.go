package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brieflyhq/briefly-backend/internal/apperrors"
	"github.com/brieflyhq/briefly-backend/internal/logger"
	"github.com/brieflyhq/briefly-backend/internal/normalization"
	"github.com/brieflyhq/briefly-backend/internal/repos"
	"github.com/brieflyhq/briefly-backend/internal/requestdata"
	"github.com/brieflyhq/briefly-backend/internal/types"
	"github.com/brieflyhq/briefly-backend/internal/utils"
)

type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User, ip string) (*types.User, error)
	LoginUser(ctx context.Context, identifier, password, ip string) (string, error)
	UserFromToken(ctx context.Context, tokenString string) (*types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User, ip string) (*types.User, error) {
	utils.NormalizeUserFields(user)
	if vErr := utils.ValidateRegistration(ctx, as.userRepo, as.log, user); vErr != nil {
		return nil, vErr
	}
	if hErr := utils.HashPassword(user); hErr != nil {
		return nil, hErr
	}
	user.LastLoginIP = ip

	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		if _, ucErr := as.userRepo.Create(ctx, tx, []*types.User{user}); ucErr != nil {
			return fmt.Errorf("failed to create user: %w", ucErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (as *authService) LoginUser(ctx context.Context, identifier, password, ip string) (string, error) {
	identifier = normalization.ParseInputString(identifier)
	if identifier == "" || password == "" {
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	users, usErr := as.userRepo.GetByIdentifiers(ctx, nil, []string{identifier})
	if usErr != nil {
		return "", fmt.Errorf("error retrieving user: %w", usErr)
	}
	if len(users) == 0 {
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	user := users[0]
	if !utils.VerifyPassword(password, user.Password) {
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if uErr := as.userRepo.UpdateLastLoginIP(ctx, nil, user.ID, ip); uErr != nil {
		as.log.Warn("Failed to record last login ip", "user_id", user.ID, "error", uErr)
	}

	token, genErr := as.generateAccessToken(user)
	if genErr != nil {
		return "", fmt.Errorf("generate access token error: %w", genErr)
	}
	return token, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// UserFromToken verifies signature and expiry, requires both subject and email
// claims, and rejects tokens whose user no longer exists.
func (as *authService) UserFromToken(ctx context.Context, tokenString string) (*types.User, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: could not validate credentials", apperrors.ErrUnauthorized)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", apperrors.ErrUnauthorized)
	}
	if claims.Email == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: could not validate credentials", apperrors.ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: could not validate credentials", apperrors.ErrUnauthorized)
	}

	users, uErr := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if uErr != nil {
		return nil, fmt.Errorf("failed to load user for token: %w", uErr)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: could not validate credentials", apperrors.ErrUnauthorized)
	}
	return users[0], nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	user, err := as.UserFromToken(ctx, tokenString)
	if err != nil {
		return ctx, err
	}
	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      user.ID,
		Email:       user.Email,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
