package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"

	"github.com/2025-2-NADS4/Projeto4/internal/domain"
	"github.com/2025-2-NADS4/Projeto4/pkg/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Campos nulos são validados pelo valor interno; inválidos caem no omitempty
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

type dashboardQuery struct {
	StartDate null.String `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   null.String `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Channels  []string    `query:"channels" validate:"dive,max=64"`
	Stores    []string    `query:"stores" validate:"dive,max=128"`
}

type exportQuery struct {
	dashboardQuery
	Format null.String `query:"format" validate:"omitempty,oneof=csv xlsx"`
}

func queryValue(r *http.Request, key string) null.String {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	return null.NewString(value, value != "")
}

// queryList aceita tanto channels=a,b quanto channels=a&channels=b
func queryList(r *http.Request, key string) []string {
	var values []string
	for _, raw := range r.URL.Query()[key] {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}
	return values
}

func readDashboardQuery(r *http.Request) dashboardQuery {
	return dashboardQuery{
		StartDate: queryValue(r, "start_date"),
		EndDate:   queryValue(r, "end_date"),
		Channels:  queryList(r, "channels"),
		Stores:    queryList(r, "stores"),
	}
}

// toFilters só define o intervalo quando as duas datas foram informadas
func (q dashboardQuery) toFilters() domain.DashboardFilters {
	filters := domain.DashboardFilters{
		Channels: q.Channels,
		Stores:   q.Stores,
	}

	if q.StartDate.Valid && q.EndDate.Valid {
		start, startErr := utils.ParseDate(q.StartDate.String)
		end, endErr := utils.ParseDate(q.EndDate.String)
		if startErr == nil && endErr == nil {
			filters.Range = domain.NewDateRange(*start, *end)
		}
	}

	return filters
}

// validationDetails resume os erros do validator por campo
func validationDetails(err error) map[string]string {
	details := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["request"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = fieldErr.Tag()
	}
	return details
}
