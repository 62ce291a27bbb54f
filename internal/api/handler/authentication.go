package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/authenticating"
	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
	"github.com/2025-2-NADS4/Projeto4/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MeResponse struct {
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	SessionID string      `json:"session_id"`
	Home      string      `json:"home"`
	ExpiresAt any         `json:"expires_at,omitempty"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("login: falha na autenticação")
			handleAuthError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		if err := service.Logout(r.Context(), claims); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("logout: não foi possível encerrar a sessão")
			handleAuthError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.PageResolution{Redirect: domain.PageLogin})
	}
}

// GetMe retorna os dados da sessão autenticada
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		response := MeResponse{
			Email:     claims.UserEmail,
			Role:      claims.UserRole,
			SessionID: claims.SessionID(),
			Home:      domain.HomePage(claims.UserRole),
		}
		if claims.ExpiresAt != nil {
			response.ExpiresAt = claims.ExpiresAt.Time
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

// ResolvePage decide a página ou o redirecionamento para o caminho pedido. Sem sessão
// o papel é vazio e tudo leva ao login.
func ResolvePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSpace(r.URL.Query().Get("path"))
		if path == "" {
			path = "/"
		}

		role := domain.RoleNone
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			role = claims.UserRole
		}

		writeJSON(w, r, http.StatusOK, domain.ResolvePage(role, path))
	}
}

// handleAuthError converte os erros de autenticação na resposta padronizada
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.Email != "" {
			details = map[string]any{"email": authErr.Email}
		}
		message := authErr.Details
		if message == "" {
			message = authErr.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Email ou senha inválidos", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Por favor, insira o email e a password.", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
	}
}
