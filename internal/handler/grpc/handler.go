package grpc

import (
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// APIServiceName is the service name under which the booking API readiness
// is published on the standard gRPC health service. The empty name reports
// the same status.
const APIServiceName = "turfbooking.v1.API"

// Handler is the root gRPC transport handler.
//
// It owns the gRPC health server. The HTTP API is the only business surface,
// so the gRPC side exists for load balancers and orchestrators that speak
// grpc.health.v1. A handler instance is created once at startup and shared
// by the gRPC server and the health-probe worker.
type Handler struct {
	// services provides access to the readiness check.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both published service names start as
// NOT_SERVING until the first successful readiness probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the handler's gRPC services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing publishes the readiness of the API.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(APIServiceName, status)
}

// Shutdown switches every service to NOT_SERVING and ignores later updates,
// so clients stop routing traffic while the server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
