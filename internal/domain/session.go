package domain

type Role string

const (
	RoleNone   Role = ""
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

const (
	PageLogin  = "/login"
	PageAdmin  = "/admin"
	PageClient = "/client"
)

// PageResolution é a página a renderizar ou o destino de redirecionamento
type PageResolution struct {
	Page     string `json:"page,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// HomePage é a única página acessível para cada papel
func HomePage(role Role) string {
	switch role {
	case RoleAdmin:
		return PageAdmin
	case RoleClient:
		return PageClient
	default:
		return PageLogin
	}
}

// ResolvePage decide o que exibir para o papel da sessão. Sem sessão só o login é
// acessível; cada papel autenticado fica restrito ao seu dashboard.
func ResolvePage(role Role, path string) PageResolution {
	home := HomePage(role)
	if path == home {
		return PageResolution{Page: home}
	}
	return PageResolution{Redirect: home}
}
