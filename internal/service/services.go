package service

import (
	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
)

type Services struct {
	AuthService    AuthService
	TurfService    TurfService
	BookingService BookingService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires every service over storages. Auth, turf and booking
// services are wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	clock := utils.SystemClock{}

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, cfg.App, clock, logger)),
		TurfService: NewTurfValidationService().
			Wrap(NewTurfService(storages.TurfRepository, logger)),
		BookingService: NewBookingValidationService().
			Wrap(NewBookingService(storages.BookingRepository, utils.NewUUIDGenerator(), clock, logger)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
