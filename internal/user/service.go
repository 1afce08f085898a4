package user

import (
	"context"
	"errors"
	"time"

	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
	"golang.org/x/oauth2"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrUnauthorized = errors.New("unauthorized")

const tokenDuration = 24 * time.Hour

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, string, error)
	RefreshToken(ctx context.Context, claims *auth.UserClaims) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &service{repo: repo, oauthConfig: oauthConfig}
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*User, string, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to exchange Google authorization code")
		return nil, "", ErrUnauthorized
	}

	client := s.oauthConfig.Client(ctx, token)
	oauthService, err := goauth.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.WithError(err).Error("Failed to create Google userinfo client")
		return nil, "", err
	}

	info, err := oauthService.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google userinfo")
		return nil, "", err
	}

	encryptedAccess, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return nil, "", err
	}
	encryptedRefresh := ""
	if token.RefreshToken != "" {
		encryptedRefresh, err = config.Encrypt(token.RefreshToken)
		if err != nil {
			return nil, "", err
		}
	}

	u, err := s.repo.GetByGoogleID(info.Id)
	switch {
	case errors.Is(err, ErrNotFound):
		u = &User{
			GoogleID:                    info.Id,
			Email:                       info.Email,
			Name:                        info.Name,
			EncryptedGoogleAccessToken:  encryptedAccess,
			EncryptedGoogleRefreshToken: encryptedRefresh,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, "", err
		}
		log.WithField("user_id", u.ID).Info("New user signed up")
	case err != nil:
		return nil, "", err
	default:
		u.Name = info.Name
		u.Email = info.Email
		u.EncryptedGoogleAccessToken = encryptedAccess
		if encryptedRefresh != "" {
			u.EncryptedGoogleRefreshToken = encryptedRefresh
		}
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Failed to update user on login")
			return nil, "", err
		}
	}

	jwtToken, err := auth.GenerateJWT(u.ID.String(), "user", tokenDuration)
	if err != nil {
		return nil, "", err
	}
	return u, jwtToken, nil
}

func (s *service) RefreshToken(ctx context.Context, claims *auth.UserClaims) (string, error) {
	if _, err := s.repo.GetByID(claims.UserID); err != nil {
		return "", ErrUnauthorized
	}
	return auth.GenerateJWT(claims.UserID, claims.Role, tokenDuration)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(id)
}
