package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		path     string
		expected PageResolution
	}{
		{
			name:     "Sem sessão acessando o login - deve renderizar o login",
			role:     RoleNone,
			path:     "/login",
			expected: PageResolution{Page: PageLogin},
		},
		{
			name:     "Sem sessão acessando o admin - deve redirecionar para o login",
			role:     RoleNone,
			path:     "/admin",
			expected: PageResolution{Redirect: PageLogin},
		},
		{
			name:     "Admin acessando o admin - deve renderizar o admin",
			role:     RoleAdmin,
			path:     "/admin",
			expected: PageResolution{Page: PageAdmin},
		},
		{
			name:     "Admin acessando o login - deve redirecionar para o admin",
			role:     RoleAdmin,
			path:     "/login",
			expected: PageResolution{Redirect: PageAdmin},
		},
		{
			name:     "Cliente acessando o admin - deve redirecionar para o cliente",
			role:     RoleClient,
			path:     "/admin",
			expected: PageResolution{Redirect: PageClient},
		},
		{
			name:     "Cliente acessando a raiz - deve redirecionar para o cliente",
			role:     RoleClient,
			path:     "/",
			expected: PageResolution{Redirect: PageClient},
		},
		{
			name:     "Papel desconhecido - deve ser tratado como sem sessão",
			role:     Role("gerente"),
			path:     "/client",
			expected: PageResolution{Redirect: PageLogin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePage(tt.role, tt.path))
		})
	}
}
