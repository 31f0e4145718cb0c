package service

import (
	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/logger"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ListingService ClientListingService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, uploader ImageUploader, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, logger)
	listingSvc := NewClientListingService(serverAdapter, uploader, authSvc, logger)

	return &ClientServices{
		AuthService:    authSvc,
		ListingService: listingSvc,
	}
}
