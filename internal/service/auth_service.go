package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/storyforge/server/internal/config"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDisplayNameExists  = errors.New("display name already exists")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

type AuthService struct {
	players  *repository.PlayerStore
	sessions *repository.AuthSessionStore
	profiles *ProfileService
	cfg      *config.Config
}

func NewAuthService(players *repository.PlayerStore, sessions *repository.AuthSessionStore, profiles *ProfileService, cfg *config.Config) *AuthService {
	return &AuthService{
		players:  players,
		sessions: sessions,
		profiles: profiles,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	DisplayName string
	Password    string
}

type LoginInput struct {
	DisplayName string
	Password    string
}

type AuthResult struct {
	Player       *domain.Player
	AccessToken  string
	RefreshToken string
}

// Register creates the account and bootstraps its progression profile and
// default deck.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := s.players.GetByDisplayName(ctx, input.DisplayName)
	if err == nil && existing != nil {
		return nil, ErrDisplayNameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := &domain.Player{
		ID:           uuid.New(),
		PasswordHash: string(hashedPassword),
		DisplayName:  input.DisplayName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.players.Create(ctx, player); err != nil {
		return nil, err
	}

	if _, err := s.profiles.Bootstrap(ctx, player.ID, player.DisplayName); err != nil {
		return nil, err
	}

	return s.generateTokens(ctx, player)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	player, err := s.players.GetByDisplayName(ctx, input.DisplayName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokens(ctx, player)
}

func (s *AuthService) generateTokens(ctx context.Context, player *domain.Player) (*AuthResult, error) {
	accessToken, err := s.generateAccessToken(player)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.New().String()
	hashedRefresh, err := bcrypt.GenerateFromPassword([]byte(refreshToken), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	session := &domain.AuthSession{
		ID:               uuid.New(),
		PlayerID:         player.ID,
		RefreshTokenHash: string(hashedRefresh),
		ExpiresAt:        time.Now().Add(7 * 24 * time.Hour),
		CreatedAt:        time.Now(),
	}

	// One refresh session per player; a new login rotates the old one out.
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &AuthResult{
		Player:       player,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) generateAccessToken(player *domain.Player) (string, error) {
	claims := jwt.MapClaims{
		"sub":  player.ID.String(),
		"name": player.DisplayName,
		"exp":  time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *AuthService) GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return s.players.GetByID(ctx, id)
}

func (s *AuthService) RefreshTokens(ctx context.Context, playerID uuid.UUID, refreshToken string) (*AuthResult, error) {
	session, err := s.sessions.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidRefresh
	}
	if err := bcrypt.CompareHashAndPassword([]byte(session.RefreshTokenHash), []byte(refreshToken)); err != nil {
		return nil, ErrInvalidRefresh
	}

	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.generateTokens(ctx, player)
}

func (s *AuthService) Logout(ctx context.Context, playerID uuid.UUID) error {
	return s.sessions.DeleteByPlayerID(ctx, playerID)
}
