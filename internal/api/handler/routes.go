package handler

import (
	"net/http"

	"github.com/2025-2-NADS4/Projeto4/internal/api/handler/router"
	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/authenticating"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/simulating"
	"github.com/2025-2-NADS4/Projeto4/pkg/middleware"
)

func Healthcheck(dependencies ...Dependency) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies...),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/pages/resolve",
			Method:  http.MethodGet,
			Handler: ResolvePage(),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ClientDashboards(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/client/filters",
			Method:      http.MethodGet,
			Handler:     FilterOptions(service, domain.DatasetScopeClient),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClientOrAdmin()},
		},
		{
			Path:        "/v1/client/dashboard",
			Method:      http.MethodGet,
			Handler:     ClientDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClientOrAdmin()},
		},
		{
			Path:        "/v1/client/export",
			Method:      http.MethodGet,
			Handler:     ExportOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClientOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdminDashboards(service dashboarding.Dashboarder, simulator simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/filters",
			Method:      http.MethodGet,
			Handler:     FilterOptions(service, domain.DatasetScopeAdmin),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/dashboard",
			Method:      http.MethodGet,
			Handler:     AdminDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/simulation",
			Method:      http.MethodPost,
			Handler:     RunSimulation(service, simulator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
