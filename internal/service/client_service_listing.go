package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/internal/workers"
	"github.com/MKhiriev/go-estate/models"
)

type clientListingService struct {
	adapter   adapter.ServerAdapter
	uploader  ImageUploader
	auth      ClientAuthService
	validator validators.Validator

	logger *logger.Logger
}

func NewClientListingService(serverAdapter adapter.ServerAdapter, uploader ImageUploader, auth ClientAuthService, logger *logger.Logger) ClientListingService {
	return &clientListingService{
		adapter:   serverAdapter,
		uploader:  uploader,
		auth:      auth,
		validator: validators.NewListingValidator(),
		logger:    logger,
	}
}

func (l *clientListingService) SubmitListing(ctx context.Context, req models.ListingRequest, photos []workers.UploadFile) (models.Listing, error) {
	if _, ok := l.auth.CurrentUser(); !ok {
		return models.Listing{}, ErrNotSignedIn
	}

	req, err := l.attachPhotos(ctx, req, photos)
	if err != nil {
		return models.Listing{}, err
	}

	if err = l.validator.Validate(ctx, req); err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	listing, err := l.adapter.CreateListing(ctx, req)
	if err != nil {
		return models.Listing{}, mapAdapterError(err)
	}

	l.logger.Info().Int64("listing_id", listing.ID).Msg("listing published")
	return listing, nil
}

func (l *clientListingService) EditListing(ctx context.Context, listingID int64, req models.ListingRequest, photos []workers.UploadFile) (models.Listing, error) {
	if _, ok := l.auth.CurrentUser(); !ok {
		return models.Listing{}, ErrNotSignedIn
	}

	req, err := l.attachPhotos(ctx, req, photos)
	if err != nil {
		return models.Listing{}, err
	}

	if err = l.validator.Validate(ctx, req); err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	listing, err := l.adapter.UpdateListing(ctx, listingID, req)
	if err != nil {
		return models.Listing{}, mapAdapterError(err)
	}

	return listing, nil
}

func (l *clientListingService) RemoveListing(ctx context.Context, listingID int64) error {
	if _, ok := l.auth.CurrentUser(); !ok {
		return ErrNotSignedIn
	}

	if err := l.adapter.DeleteListing(ctx, listingID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (l *clientListingService) Listing(ctx context.Context, listingID int64) (models.Listing, error) {
	listing, err := l.adapter.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, mapAdapterError(err)
	}

	return listing, nil
}

func (l *clientListingService) MyListings(ctx context.Context) ([]models.Listing, error) {
	current, ok := l.auth.CurrentUser()
	if !ok {
		return nil, ErrNotSignedIn
	}

	listings, err := l.adapter.UserListings(ctx, current.ID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return listings, nil
}

func (l *clientListingService) Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error) {
	listings, err := l.adapter.Search(ctx, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return listings, nil
}

// attachPhotos uploads the new photos and appends their URLs after the ones
// the request already carries. The batch is all-or-nothing, so a failed
// upload never publishes a listing with a partial photo set.
func (l *clientListingService) attachPhotos(ctx context.Context, req models.ListingRequest, photos []workers.UploadFile) (models.ListingRequest, error) {
	if len(photos) == 0 {
		return req, nil
	}

	urls, err := l.uploader.UploadAll(ctx, photos)
	if err != nil {
		return models.ListingRequest{}, fmt.Errorf("attach photos: %w", err)
	}

	req.ImageURLs = append(req.ImageURLs, urls...)
	return req, nil
}
