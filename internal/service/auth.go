package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sammytumzy/TunmzyTech/internal/auth"
	"github.com/sammytumzy/TunmzyTech/internal/client"
	"github.com/sammytumzy/TunmzyTech/internal/config"
	"github.com/sammytumzy/TunmzyTech/internal/dto"
	"github.com/sammytumzy/TunmzyTech/internal/model"
	"github.com/sammytumzy/TunmzyTech/internal/repository"
)

type AuthService interface {
	Verify(ctx context.Context, accessToken string) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	piClient   client.PiClient
	userRepo   repository.UserRepository
	sessionCfg *config.Session
	logger     zerolog.Logger
}

func NewAuthService(
	piClient client.PiClient,
	userRepo repository.UserRepository,
	sessionCfg *config.Session,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		piClient:   piClient,
		userRepo:   userRepo,
		sessionCfg: sessionCfg,
		logger:     logger,
	}
}

// Verify checks the access token against the Pi API and upserts the user
// record. A fresh record gets created_at = now; repeat logins only touch
// username, access_token and last_login.
func (s *authServiceImpl) Verify(ctx context.Context, accessToken string) (*dto.AuthResponse, error) {
	profile, err := s.piClient.VerifyUser(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("verify pi user: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		UID:         profile.UID,
		Username:    profile.Username,
		AccessToken: accessToken,
		CreatedAt:   now,
		LastLogin:   now,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	sessionToken, err := auth.GenerateSessionToken(s.sessionCfg, profile.UID, profile.Username)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	s.logger.Info().Str("uid", profile.UID).Str("username", profile.Username).Msg("user authenticated")

	return &dto.AuthResponse{
		Success: true,
		User: &dto.PublicUser{
			UID:      profile.UID,
			Username: profile.Username,
		},
		SessionToken: sessionToken,
	}, nil
}
