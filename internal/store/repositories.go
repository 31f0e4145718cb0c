package store

import (
	"github.com/MKhiriev/go-estate/internal/logger"
)

// Repositories groups every repository the service layer depends on.
type Repositories struct {
	UserRepository    UserRepository
	ListingRepository ListingRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ListingRepository: NewListingRepository(db, logger),
	}
}
