package authenticating

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/2025-2-NADS4/Projeto4/infrastructure/cache"
	"github.com/2025-2-NADS4/Projeto4/internal/config"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context, claims *domain.Claims) error
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	RoleForEmail(email string) domain.Role
}

type Service struct {
	provider IdentityProvider
	cache    cache.Cache
	cfg      *config.Config
	now      func() time.Time
}

func NewService(provider IdentityProvider, sessionCache cache.Cache, cfg *config.Config) Authenticator {
	return &Service{
		provider: provider,
		cache:    sessionCache,
		cfg:      cfg,
		now:      time.Now,
	}
}

func handleEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RoleForEmail define o papel da sessão pela lista de administradores
func (s *Service) RoleForEmail(email string) domain.Role {
	if slices.Contains(s.cfg.Auth.AdminEmails, handleEmail(email)) {
		return domain.RoleAdmin
	}
	return domain.RoleClient
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = handleEmail(email)
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Por favor, insira o email e a password.")
	}

	identity, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return nil, authErr
		}
		return nil, NewAuthError(errors.Join(ErrIdentityProvider, err), apiErrors.ErrExternalService, "Erro ao autenticar usuário")
	}

	role := s.RoleForEmail(identity.Email)
	expiresAt := s.now().Add(s.cfg.Auth.SessionTTL)

	token, err := s.generateJWT(identity, role, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_email": identity.Email,
		"user_role":  role,
	}).Info("auth: login realizado")

	return &domain.Session{
		Token:     token,
		Role:      role,
		Email:     handleEmail(identity.Email),
		ExpiresAt: expiresAt,
		Redirect:  domain.HomePage(role),
	}, nil
}

func (s *Service) generateJWT(identity *domain.Identity, role domain.Role, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserEmail: handleEmail(identity.Email),
		UserRole:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   identity.Subject,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || !claims.UserRole.IsValid() || claims.SessionID() == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem sessão ou papel válido")
	}

	_, err = s.cache.Get(ctx, cache.RevokedSessionKey(claims.SessionID()))
	switch {
	case err == nil:
		return nil, NewAuthError(ErrSessionRevoked, apiErrors.ErrInvalidToken, "Sessão encerrada")
	case !errors.Is(err, cache.ErrCacheMiss):
		return nil, NewAuthError(errors.Join(ErrSessionStore, err), apiErrors.ErrCommunication, "Não foi possível validar a sessão")
	}

	return claims, nil
}

// Logout revoga a sessão até o fim da validade do token e descarta os snapshots dela
func (s *Service) Logout(ctx context.Context, claims *domain.Claims) error {
	sessionID := claims.SessionID()
	if sessionID == "" {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem sessão")
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}

	if ttl > 0 {
		if err := s.cache.Set(ctx, cache.RevokedSessionKey(sessionID), "1", ttl); err != nil {
			return NewAuthError(errors.Join(ErrSessionStore, err), apiErrors.ErrCommunication, "Não foi possível encerrar a sessão")
		}
	}

	if err := s.cache.Del(ctx,
		cache.DatasetKey(sessionID, string(domain.DatasetScopeClient)),
		cache.DatasetKey(sessionID, string(domain.DatasetScopeAdmin)),
	); err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).
			Warn("auth: não foi possível remover os snapshots da sessão")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_email": claims.UserEmail,
		"session_id": sessionID,
	}).Info("auth: logout realizado")

	return nil
}
