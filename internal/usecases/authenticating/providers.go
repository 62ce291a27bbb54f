package authenticating

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/2025-2-NADS4/Projeto4/infrastructure/integrator/supabase"
	"github.com/2025-2-NADS4/Projeto4/infrastructure/repository"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
)

const invalidCredentialsMessage = "Email ou senha inválidos"

// IdentityProvider confirma email e senha. O papel da sessão não vem do provedor.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)
}

type databaseProvider struct {
	userRepo repository.UserRepository
}

// NewDatabaseProvider autentica contra a tabela users com senhas em bcrypt
func NewDatabaseProvider(userRepo repository.UserRepository) IdentityProvider {
	return &databaseProvider{userRepo: userRepo}
}

func (p *databaseProvider) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, err := p.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(errors.Join(ErrIdentityProvider, err), apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, invalidCredentialsMessage)
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, email, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, invalidCredentialsMessage)
	}

	return &domain.Identity{Subject: user.Email, Email: user.Email}, nil
}

type supabaseProvider struct {
	integrator supabase.SupabaseIntegrator
}

// NewSupabaseProvider autentica no Supabase Auth
func NewSupabaseProvider(integrator supabase.SupabaseIntegrator) IdentityProvider {
	return &supabaseProvider{integrator: integrator}
}

func (p *supabaseProvider) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := p.integrator.Authenticate(ctx, email, password)
	if errors.Is(err, supabase.ErrInvalidCredentials) {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, invalidCredentialsMessage)
	}
	if err != nil {
		return nil, NewAuthError(errors.Join(ErrIdentityProvider, err), apiErrors.ErrExternalService, "Erro ao comunicar com o provedor de identidade")
	}

	return identity, nil
}

// HashPassword gera o hash usado pela tabela users
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
