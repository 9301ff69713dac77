package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"org-access-control/internal/logger"
)

// ProbeInterval is how often the database is pinged to refresh serving status.
const ProbeInterval = 10 * time.Second

const probeTimeout = 2 * time.Second

// Pinger reports database reachability (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server wraps the standard gRPC health server and drives its status from a database probe.
// Services are reported for the empty name (overall) and for every name passed to NewServer.
type Server struct {
	*health.Server
	pinger   Pinger
	services []string
	log      *logger.Logger
}

// NewServer returns a health server. If pinger is nil, status is always SERVING.
func NewServer(pinger Pinger, services ...string) *Server {
	return &Server{
		Server:   health.NewServer(),
		pinger:   pinger,
		services: append([]string{""}, services...),
		log:      logger.New().WithField("component", "health"),
	}
}

// Probe pings the database once and publishes the resulting status.
func (s *Server) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if s.pinger != nil {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.pinger.PingContext(pctx)
		cancel()
		if err != nil {
			s.log.WithError(err).Warn("database ping failed")
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	for _, name := range s.services {
		s.SetServingStatus(name, st)
	}
	return st
}

// Run probes immediately and then every interval until ctx is done, after which all services
// are marked NOT_SERVING.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	s.Probe(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			return
		case <-t.C:
			s.Probe(ctx)
		}
	}
}
