package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

// Dependency é um recurso externo verificado pelo healthcheck
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type healthcheckResponse struct {
	Status       string            `json:"status"`
	Time         time.Time         `json:"time"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// HealthcheckHandler responde 503 quando alguma dependência não responde ao ping
func HealthcheckHandler(dependencies ...Dependency) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		response := healthcheckResponse{Status: "ok", Time: time.Now()}
		status := http.StatusOK

		if len(dependencies) > 0 {
			response.Dependencies = make(map[string]string, len(dependencies))
		}
		for _, dependency := range dependencies {
			if err := dependency.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", dependency.Name).Warn("healthcheck: dependência indisponível")
				response.Dependencies[dependency.Name] = "down"
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Dependencies[dependency.Name] = "up"
		}

		writeJSON(w, r, status, response)
	})
}
