package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/database"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/pkg/utils"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	DB  *sqlx.DB
	Log *logger.Logger
	JWT config.JWTConfig
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		DB:  database.DB,
		Log: logger.NewLogger("auth-service"),
		JWT: jwtCfg,
	}
}

// Signup registers a user. A blank organization id starts a new organization
// with this user as its first member.
func (s *AuthService) Signup(ctx context.Context, user models.User) (models.User, error) {
	hashedPassword, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	var existingID string
	err = s.DB.QueryRowxContext(ctx, "SELECT id FROM users WHERE email = ?", user.Email).Scan(&existingID)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("check existing user: %w", err)
	}

	if user.OrganizationID == "" {
		user.OrganizationID = uuid.NewString()
		_, err = s.DB.ExecContext(ctx,
			"INSERT INTO organizations (id, name, created_at) VALUES (?, ?, ?)",
			user.OrganizationID, user.Name+"'s organization", time.Now().Unix(),
		)
		if err != nil {
			return models.User{}, fmt.Errorf("create organization: %w", err)
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().Unix()
	_, err = s.DB.ExecContext(ctx,
		"INSERT INTO users (id, organization_id, email, password, name, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.OrganizationID, user.Email, hashedPassword, user.Name, user.CreatedAt,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	s.Log.Info("User registered", "user_id", user.ID, "organization_id", user.OrganizationID)
	user.Password = ""
	return user, nil
}

// Login authenticates a user and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	var user models.User
	query := "SELECT id, organization_id, email, password, name, created_at FROM users WHERE email = ?"
	err := s.DB.QueryRowxContext(ctx, query, email).
		Scan(&user.ID, &user.OrganizationID, &user.Email, &user.Password, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("query user: %w", err)
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", models.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

// GenerateJWT creates the token carried by every authenticated request.
func (s *AuthService) GenerateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":           user.Email,
		"user_id":         user.ID,
		"organization_id": user.OrganizationID,
		"exp":             time.Now().Add(s.JWT.TokenDuration).Unix(),
	})
	return token.SignedString([]byte(s.JWT.Secret))
}
