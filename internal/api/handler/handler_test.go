package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/analyzing"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/authenticating"
	authmocks "github.com/2025-2-NADS4/Projeto4/internal/usecases/authenticating/mocks"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding"
	dashmocks "github.com/2025-2-NADS4/Projeto4/internal/usecases/dashboarding/mocks"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/exporting"
	"github.com/2025-2-NADS4/Projeto4/internal/usecases/simulating"
	simmocks "github.com/2025-2-NADS4/Projeto4/internal/usecases/simulating/mocks"
	"github.com/2025-2-NADS4/Projeto4/pkg/apiErrors"
	"github.com/2025-2-NADS4/Projeto4/pkg/middleware"
)

func clientClaims() *domain.Claims {
	return &domain.Claims{
		UserEmail: "loja@cannoli.com",
		UserRole:  domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "sessao-1",
			ExpiresAt: jwt.NewNumericDate(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)),
		},
	}
}

func adminClaims() *domain.Claims {
	return &domain.Claims{
		UserEmail:        "admin@cannoli.com",
		UserRole:         domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ID: "sessao-admin"},
	}
}

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *authmocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "login com sucesso devolve a sessão",
			body: `{"email":"loja@cannoli.com","password":"segredo"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "loja@cannoli.com", "segredo").Return(&domain.Session{
					Token:    "jwt",
					Role:     domain.RoleClient,
					Redirect: domain.PageClient,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "corpo inválido",
			body:           `{"email":`,
			setupMock:      func(m *authmocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "campos vazios",
			body: `{"email":"","password":""}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "", "").Return(nil, authenticating.NewAuthError(
					authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Por favor, insira o email e a password."))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "credenciais inválidas",
			body: `{"email":"loja@cannoli.com","password":"errada"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "loja@cannoli.com", "errada").Return(nil, authenticating.NewUserAuthError(
					authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "loja@cannoli.com", "Email ou senha inválidos"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "erro desconhecido vira erro interno",
			body: `{"email":"loja@cannoli.com","password":"segredo"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setupMock(auth)

			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(auth).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
				return
			}

			var session domain.Session
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
			assert.Equal(t, "jwt", session.Token)
			assert.Equal(t, domain.PageClient, session.Redirect)
		})
	}
}

func TestLogoutAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authmocks.NewMockAuthenticator(ctrl)
	claims := clientClaims()

	t.Run("logout encerra a sessão e manda para o login", func(t *testing.T) {
		auth.EXPECT().Logout(gomock.Any(), claims).Return(nil)

		rec := httptest.NewRecorder()
		Logout(auth).ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodPost, "/v1/logout", nil), claims))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
	})

	t.Run("logout sem sessão", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Logout(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me devolve papel e página inicial", func(t *testing.T) {
		rec := httptest.NewRecorder()
		GetMe().ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodGet, "/v1/me", nil), claims))

		require.Equal(t, http.StatusOK, rec.Code)
		var me MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, domain.RoleClient, me.Role)
		assert.Equal(t, "sessao-1", me.SessionID)
		assert.Equal(t, domain.PageClient, me.Home)
	})
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name     string
		claims   *domain.Claims
		path     string
		expected domain.PageResolution
	}{
		{"sem sessão vai para o login", nil, "/admin", domain.PageResolution{Redirect: domain.PageLogin}},
		{"sem sessão no login permanece", nil, "/login", domain.PageResolution{Page: domain.PageLogin}},
		{"cliente tentando admin é redirecionado", clientClaims(), "/admin", domain.PageResolution{Redirect: domain.PageClient}},
		{"admin na raiz vai para o admin", adminClaims(), "", domain.PageResolution{Redirect: domain.PageAdmin}},
		{"admin no próprio painel", adminClaims(), "/admin", domain.PageResolution{Page: domain.PageAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/pages/resolve?path="+tt.path, nil)
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			rec := httptest.NewRecorder()

			ResolvePage().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resolution domain.PageResolution
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolution))
			assert.Equal(t, tt.expected, resolution)
		})
	}
}

func TestClientDashboard(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(m *dashmocks.MockDashboarder)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "filtros completos",
			query: "start_date=2025-01-01&end_date=2025-01-31&channels=IFOOD,PDV",
			setupMock: func(m *dashmocks.MockDashboarder) {
				expected := domain.DashboardFilters{
					Range: domain.NewDateRange(
						time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
					),
					Channels: []string{"IFOOD", "PDV"},
				}
				m.EXPECT().ClientDashboard(gomock.Any(), "sessao-1", expected).
					Return(&domain.ClientDashboard{KPI: domain.ReadyPanel(domain.RevenueKPI{Revenue: 10})}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "sem data final o intervalo fica vazio",
			query: "start_date=2025-01-01",
			setupMock: func(m *dashmocks.MockDashboarder) {
				m.EXPECT().ClientDashboard(gomock.Any(), "sessao-1", domain.DashboardFilters{}).
					Return(&domain.ClientDashboard{KPI: domain.NotReadyPanel[domain.RevenueKPI]()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "data mal formatada",
			query:          "start_date=01/01/2025&end_date=2025-01-31",
			setupMock:      func(m *dashmocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "falha na fonte de dados",
			query: "start_date=2025-01-01&end_date=2025-01-31",
			setupMock: func(m *dashmocks.MockDashboarder) {
				m.EXPECT().ClientDashboard(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(dashboarding.ErrDataSource, errors.New("timeout")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrDataSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := dashmocks.NewMockDashboarder(ctrl)
			tt.setupMock(service)

			req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/client/dashboard?"+tt.query, nil), clientClaims())
			rec := httptest.NewRecorder()

			ClientDashboard(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestAdminDashboardAndFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashmocks.NewMockDashboarder(ctrl)

	t.Run("lojas repetidas e separadas por vírgula", func(t *testing.T) {
		service.EXPECT().AdminDashboard(gomock.Any(), "sessao-admin", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filters domain.DashboardFilters) (*domain.AdminDashboard, error) {
				assert.Equal(t, []string{"loja-a", "loja-b", domain.UnknownStore}, filters.Stores)
				assert.True(t, filters.Range.IsSet())
				return &domain.AdminDashboard{}, nil
			})

		query := "start_date=2025-01-01&end_date=2025-01-31&stores=loja-a,loja-b&stores=Loja%20Desconhecida"
		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard?"+query, nil), adminClaims())
		rec := httptest.NewRecorder()

		AdminDashboard(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("opções de filtro do escopo admin", func(t *testing.T) {
		service.EXPECT().FilterOptions(gomock.Any(), "sessao-admin", domain.DatasetScopeAdmin).
			Return(&domain.FilterOptions{Stores: []string{"loja-a", domain.UnknownStore}}, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/admin/filters", nil), adminClaims())
		rec := httptest.NewRecorder()

		FilterOptions(service, domain.DatasetScopeAdmin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.UnknownStore)
	})
}

func TestExportOrders(t *testing.T) {
	orders := []domain.Order{
		{
			ID:          "1",
			CreatedAt:   time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC),
			TotalAmount: 42.5,
			Status:      domain.OrderStatusConcluded,
			OrderType:   domain.OrderTypeDelivery,
			CustomerID:  null.StringFrom("c1"),
		},
	}

	t.Run("csv com separador ponto e vírgula", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := dashmocks.NewMockDashboarder(ctrl)
		service.EXPECT().ExportOrders(gomock.Any(), "sessao-1", gomock.Any()).Return(orders, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/client/export?start_date=2025-01-01&end_date=2025-01-31", nil), clientClaims())
		rec := httptest.NewRecorder()

		ExportOrders(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, exporting.FormatCSV.ContentType(), rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "cannoli_export_filtrado.csv")

		parsed, err := exporting.ParseOrdersCSV(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		require.Len(t, parsed, 1)
		assert.Equal(t, "1", parsed[0].ID)
		assert.Equal(t, domain.DefaultSalesChannel, parsed[0].Channel())
	})

	t.Run("xlsx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := dashmocks.NewMockDashboarder(ctrl)
		service.EXPECT().ExportOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(orders, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/client/export?start_date=2025-01-01&end_date=2025-01-31&format=xlsx", nil), clientClaims())
		rec := httptest.NewRecorder()

		ExportOrders(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "cannoli_export_filtrado.xlsx")
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("formato desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := dashmocks.NewMockDashboarder(ctrl)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/client/export?format=pdf", nil), clientClaims())
		rec := httptest.NewRecorder()

		ExportOrders(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("sem datas ainda não há o que exportar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := dashmocks.NewMockDashboarder(ctrl)
		service.EXPECT().ExportOrders(gomock.Any(), gomock.Any(), domain.DashboardFilters{}).Return(nil, analyzing.ErrNotReady)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/client/export", nil), clientClaims())
		rec := httptest.NewRecorder()

		ExportOrders(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrDataNotReady, decodeAPIError(t, rec).Code)
	})
}

func TestReloadDataset(t *testing.T) {
	tests := []struct {
		name          string
		claims        *domain.Claims
		query         string
		expectedScope domain.DatasetScope
	}{
		{"cliente recarrega o escopo cliente", clientClaims(), "", domain.DatasetScopeClient},
		{"cliente não consegue pedir o escopo admin", clientClaims(), "?scope=admin", domain.DatasetScopeClient},
		{"admin recarrega o escopo admin", adminClaims(), "", domain.DatasetScopeAdmin},
		{"admin pode recarregar o escopo cliente", adminClaims(), "?scope=client", domain.DatasetScopeClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := dashmocks.NewMockDashboarder(ctrl)
			service.EXPECT().Reload(gomock.Any(), tt.claims.SessionID(), tt.expectedScope).
				Return(&domain.SnapshotInfo{SnapshotID: "abc", Scope: tt.expectedScope}, nil)

			req := withClaims(httptest.NewRequest(http.MethodPost, "/v1/dashboard/reload"+tt.query, nil), tt.claims)
			rec := httptest.NewRecorder()

			ReloadDataset(service).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRunSimulation(t *testing.T) {
	dataset := &domain.Dataset{SnapshotID: "snap"}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator)
		expectedStatus int
		expectedCode   string
		expectedBody   string
	}{
		{
			name: "simulação calculada",
			body: `{"target":"inactive","cost_per_message":0.1}`,
			setupMocks: func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator) {
				d.EXPECT().Dataset(gomock.Any(), "sessao-admin", domain.DatasetScopeAdmin).Return(dataset, nil)
				s.EXPECT().Run(gomock.Any(), domain.SimulationRequest{Target: "inactive", CostPerMessage: 0.1}, dataset).
					Return(domain.SimulationOutcome{Display: domain.SimulationDisplay{TotalCost: "R$ 20,00"}})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "R$ 20,00",
		},
		{
			name: "falha de cálculo devolve o painel de erro",
			body: `{"target":"active","cost_per_message":0.1}`,
			setupMocks: func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator) {
				d.EXPECT().Dataset(gomock.Any(), gomock.Any(), gomock.Any()).Return(dataset, nil)
				s.EXPECT().Run(gomock.Any(), gomock.Any(), dataset).
					Return(domain.SimulationOutcome{Failed: true, Display: simulating.FailedDisplay})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"roi":"Erro"`,
		},
		{
			name:           "público desconhecido",
			body:           `{"target":"vip","cost_per_message":0.1}`,
			setupMocks:     func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrUnknownSegment,
		},
		{
			name: "custo zero explícito é aceito",
			body: `{"target":"inactive","cost_per_message":0}`,
			setupMocks: func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator) {
				d.EXPECT().Dataset(gomock.Any(), "sessao-admin", domain.DatasetScopeAdmin).Return(dataset, nil)
				s.EXPECT().Run(gomock.Any(), domain.SimulationRequest{Target: "inactive", CostPerMessage: 0}, dataset).
					Return(domain.SimulationOutcome{Display: domain.SimulationDisplay{TotalCost: "R$ 0,00"}})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "R$ 0,00",
		},
		{
			name:           "custo ausente",
			body:           `{"target":"active"}`,
			setupMocks:     func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "custo negativo",
			body:           `{"target":"active","cost_per_message":-1}`,
			setupMocks:     func(d *dashmocks.MockDashboarder, s *simmocks.MockSimulator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dashboards := dashmocks.NewMockDashboarder(ctrl)
			simulator := simmocks.NewMockSimulator(ctrl)
			tt.setupMocks(dashboards, simulator)

			req := withClaims(httptest.NewRequest(http.MethodPost, "/v1/admin/simulation", strings.NewReader(tt.body)), adminClaims())
			rec := httptest.NewRecorder()

			RunSimulation(dashboards, simulator).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync(context.Context) { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{}
	services := CronJobServices{CronJobTypeAnomalyWatch: job}

	run := func(jobType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+jobType+"/run", nil)
		req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "type", Value: jobType}}))
		rec := httptest.NewRecorder()
		RunCronJob(services).ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusAccepted, run(CronJobTypeAnomalyWatch).Code)
	assert.Equal(t, http.StatusAccepted, run(CronJobTypeAll).Code)
	assert.Equal(t, 2, job.triggered)

	rec := run("meta")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeAPIError(t, rec).Message, CronJobTypeAnomalyWatch)

	statusRec := httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(statusRec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusOK, statusRec.Code)
	assert.Contains(t, statusRec.Body.String(), CronJobTypeAnomalyWatch)
}

func TestHealthcheck(t *testing.T) {
	up := Dependency{Name: "cache", Ping: func(context.Context) error { return nil }}
	down := Dependency{Name: "postgres", Ping: func(context.Context) error { return errors.New("connection refused") }}

	rec := httptest.NewRecorder()
	HealthcheckHandler(up).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cache":"up"`)

	rec = httptest.NewRecorder()
	HealthcheckHandler(up, down).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"down"`)
}
