package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker probes one dependency of a service
type Checker func(ctx context.Context) error

// Service aggregates dependency checkers for the readiness endpoint
type Service struct {
	checkers map[string]Checker
}

// NewService creates a new health service
func NewService() *Service {
	return &Service{
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all checkers and returns per-dependency status
func (s *Service) Check(ctx context.Context) (bool, map[string]string) {
	healthy := true
	results := make(map[string]string, len(s.checkers))

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := checker(checkCtx)
		cancel()

		if err != nil {
			healthy = false
			results[name] = err.Error()
		} else {
			results[name] = "ok"
		}
	}

	return healthy, results
}

// RegisterEndpoints registers liveness and readiness endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		healthy, results := svc.Check(c.Request().Context())

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, map[string]interface{}{
			"service":      serviceName,
			"version":      version,
			"dependencies": results,
			"server_time":  time.Now(),
		})
	})
}
