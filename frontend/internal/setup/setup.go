package setup

import (
	"fmt"

	"github.com/learnsphere-dev/learnsphere/shared/apiclient"
	"github.com/learnsphere-dev/learnsphere/frontend/internal/handler"
	"github.com/learnsphere-dev/learnsphere/shared/config"
	"github.com/learnsphere-dev/learnsphere/shared/metrics"
	httpmetrics "github.com/learnsphere-dev/learnsphere/shared/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Dependencies struct {
	Config    *config.Config
	Handler   *handler.Handler
	APIClient *apiclient.Client
	Registry  *prometheus.Registry
	Metrics   *httpmetrics.Metrics
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	apiClient, err := apiclient.New(
		apiclient.Config{BaseURL: cfg.API.BaseURL},
		apiclient.WithMetrics(metrics.NewClient(reg)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize api client: %w", err)
	}

	return &Dependencies{
		Config:    cfg,
		Handler:   handler.New(cfg, apiClient),
		APIClient: apiClient,
		Registry:  reg,
		Metrics:   httpmetrics.New(reg),
	}, nil
}
