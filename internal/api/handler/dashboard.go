package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/analyzing"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/exporting"
	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
	"github.com/2025-2-NADS4/Projeto4/pkg/log"
)

// FilterOptions devolve as datas limite e as opções de canal ou loja do escopo
func FilterOptions(service dashboarding.Dashboarder, scope domain.DatasetScope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		options, err := service.FilterOptions(r.Context(), claims.SessionID(), scope)
		if err != nil {
			handleDashboardError(w, r, err, "filters")
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}

func ClientDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		query := readDashboardQuery(r)
		if err := validate.Struct(query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de filtro inválidos", validationDetails(err))
			return
		}

		dashboard, err := service.ClientDashboard(r.Context(), claims.SessionID(), query.toFilters())
		if err != nil {
			handleDashboardError(w, r, err, "client-dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

func AdminDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		query := readDashboardQuery(r)
		if err := validate.Struct(query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de filtro inválidos", validationDetails(err))
			return
		}

		dashboard, err := service.AdminDashboard(r.Context(), claims.SessionID(), query.toFilters())
		if err != nil {
			handleDashboardError(w, r, err, "admin-dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// ExportOrders gera o arquivo com os pedidos filtrados. O arquivo é montado em memória
// para que uma falha de escrita ainda possa virar resposta de erro.
func ExportOrders(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		query := exportQuery{
			dashboardQuery: readDashboardQuery(r),
			Format:         queryValue(r, "format"),
		}
		if err := validate.Struct(query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de exportação inválidos", validationDetails(err))
			return
		}

		format, err := exporting.ParseFormat(query.Format.String)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		orders, err := service.ExportOrders(r.Context(), claims.SessionID(), query.toFilters())
		if err != nil {
			handleDashboardError(w, r, err, "export")
			return
		}

		var buf bytes.Buffer
		if err := exporting.Write(&buf, format, orders); err != nil {
			logger.WithError(err).Error("export: falha ao gerar arquivo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar arquivo de exportação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"session_id":    claims.SessionID(),
			"export_format": format,
			"export_orders": len(orders),
		}).Info("export: arquivo gerado")

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("export: cliente desconectou durante o download")
		}
	}
}

// ReloadDataset busca de novo os dados da sessão. O escopo segue o papel: administradores
// podem pedir ?scope=client para o painel do cliente.
func ReloadDataset(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		scope := domain.DatasetScopeClient
		if claims.UserRole == domain.RoleAdmin {
			scope = domain.DatasetScopeAdmin
			if requested := domain.DatasetScope(r.URL.Query().Get("scope")); requested == domain.DatasetScopeClient {
				scope = requested
			}
		}

		info, err := service.Reload(r.Context(), claims.SessionID(), scope)
		if err != nil {
			handleDashboardError(w, r, err, "reload")
			return
		}

		writeJSON(w, r, http.StatusOK, info)
	}
}

func handleDashboardError(w http.ResponseWriter, r *http.Request, err error, prefix string) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, analyzing.ErrNotReady):
		apiErrors.WriteError(w, apiErrors.ErrDataNotReady, domain.MessageAwaitingFilters, nil)

	case errors.Is(err, dashboarding.ErrDataSource):
		logger.Error(prefix + ": falha ao carregar dados")
		apiErrors.WriteError(w, apiErrors.ErrDataSource, "Não foi possível carregar os dados. Tente novamente.", nil)

	case errors.Is(err, dashboarding.ErrInvalidScope):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logger.Error(prefix + ": erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao montar o painel", nil)
	}
}
