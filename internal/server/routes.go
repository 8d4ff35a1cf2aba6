package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchstats/internal/handlers"
)

// Deps are the collaborators the routes dispatch to. Runs, Upstream and
// Database are optional and may be nil.
type Deps struct {
	Tasks    handlers.Aggregator
	Runs     handlers.RunStore
	Upstream handlers.UpstreamHealth
	Database handlers.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	taskHandler := handlers.NewTaskHandler(deps.Tasks)
	runHandler := handlers.NewRunHandler(deps.Runs)
	probeHandler := handlers.NewProbeHandler(deps.Upstream, deps.Database)

	s.App.Get("/", taskHandler.Welcome)

	task := s.App.Group("/task")
	task.Get("/rocket/launches-by-year", taskHandler.LaunchesByYear)
	task.Get("/rocket/launches-by-site", taskHandler.LaunchesBySite)
	task.Get("/runs", runHandler.List)
	task.Get("/runs/:id", runHandler.Get)

	// Health probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
