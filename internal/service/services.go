package service

import (
	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ListingService ListingService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		UserService:    NewUserService(repositories.UserRepository, repositories.ListingRepository, logger),
		ListingService: NewListingService(repositories.ListingRepository, logger),
	}
}
