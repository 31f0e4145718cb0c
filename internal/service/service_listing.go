package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
)

// listingService is the concrete implementation of ListingService. It
// enforces listing invariants and ownership rules on top of the
// ListingRepository.
type listingService struct {
	listingRepository store.ListingRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewListingService constructs a new ListingService wired to the given
// ListingRepository.
func NewListingService(listingRepository store.ListingRepository, logger *logger.Logger) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		validator:         validators.NewListingValidator(),
		logger:            logger,
	}
}

// CreateListing validates the request and persists a new listing owned by
// ownerID.
//
// Returns the persisted listing (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the request fails structural validation.
//   - A wrapped storage error if persistence fails.
func (s *listingService) CreateListing(ctx context.Context, ownerID int64, request models.ListingRequest) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("ownerID", ownerID).Msg("invalid listing data provided")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	listing := listingFromRequest(request)
	listing.OwnerID = ownerID

	createdListing, err := s.listingRepository.CreateListing(ctx, listing)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("listing creation ended with error")
		return models.Listing{}, fmt.Errorf("listing creation ended with error: %w", err)
	}

	return createdListing, nil
}

// GetListing returns the listing with the given ID. Listings are public:
// no ownership check applies to reads.
func (s *listingService) GetListing(ctx context.Context, listingID int64) (models.Listing, error) {
	log := logger.FromContext(ctx)

	listing, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing search by ID failed")
		return models.Listing{}, fmt.Errorf("listing search by ID failed: %w", err)
	}

	return listing, nil
}

// UpdateListing replaces the stored listing fields with the request after
// verifying that actorID owns the listing. Updates are full-record: the
// request must carry every field, and the last write wins.
//
// Returns the updated listing or:
//   - ErrInvalidDataProvided if the request fails structural validation.
//   - A wrapped store.ErrListingNotFound when the listing does not exist.
//   - ErrNotResourceOwner when actorID does not own the listing.
func (s *listingService) UpdateListing(ctx context.Context, actorID, listingID int64, request models.ListingRequest) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("listingID", listingID).Msg("invalid listing data provided")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing search by ID failed")
		return models.Listing{}, fmt.Errorf("listing search by ID failed: %w", err)
	}

	if stored.OwnerID != actorID {
		log.Error().
			Int64("actorID", actorID).
			Int64("ownerID", stored.OwnerID).
			Int64("listingID", listingID).
			Msg("listing update denied: not the owner")
		return models.Listing{}, ErrNotResourceOwner
	}

	listing := listingFromRequest(request)
	listing.ID = listingID
	listing.OwnerID = stored.OwnerID

	updatedListing, err := s.listingRepository.UpdateListing(ctx, listing)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing update ended with error")
		return models.Listing{}, fmt.Errorf("listing update ended with error: %w", err)
	}

	return updatedListing, nil
}

// DeleteListing removes the listing after verifying that actorID owns it.
//
// Returns nil on success or:
//   - A wrapped store.ErrListingNotFound when the listing does not exist.
//   - ErrNotResourceOwner when actorID does not own the listing.
func (s *listingService) DeleteListing(ctx context.Context, actorID, listingID int64) error {
	log := logger.FromContext(ctx)

	stored, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing search by ID failed")
		return fmt.Errorf("listing search by ID failed: %w", err)
	}

	if stored.OwnerID != actorID {
		log.Error().
			Int64("actorID", actorID).
			Int64("ownerID", stored.OwnerID).
			Int64("listingID", listingID).
			Msg("listing deletion denied: not the owner")
		return ErrNotResourceOwner
	}

	if err := s.listingRepository.DeleteListing(ctx, listingID); err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing deletion ended with error")
		return fmt.Errorf("listing deletion ended with error: %w", err)
	}

	return nil
}

// ListByOwner returns every listing owned by ownerID, newest first.
// Callers may only list their own portfolio: ErrNotResourceOwner is
// returned when actorID differs from ownerID.
func (s *listingService) ListByOwner(ctx context.Context, actorID, ownerID int64) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	if actorID != ownerID {
		log.Error().
			Int64("actorID", actorID).
			Int64("ownerID", ownerID).
			Msg("listing portfolio access denied: not the owner")
		return nil, ErrNotResourceOwner
	}

	listings, err := s.listingRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("listing search by owner failed")
		return nil, fmt.Errorf("listing search by owner failed: %w", err)
	}

	return listings, nil
}

// Search runs the public listing search with the given filters.
func (s *listingService) Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	listings, err := s.listingRepository.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("searchTerm", query.SearchTerm).Msg("listing search failed")
		return nil, fmt.Errorf("listing search failed: %w", err)
	}

	return listings, nil
}

// listingFromRequest maps the transport payload onto the storage model.
// ID and OwnerID are set by the caller.
func listingFromRequest(request models.ListingRequest) models.Listing {
	return models.Listing{
		Name:          request.Name,
		Description:   request.Description,
		Address:       request.Address,
		Type:          request.Type,
		Parking:       request.Parking,
		Furnished:     request.Furnished,
		Offer:         request.Offer,
		Bedrooms:      request.Bedrooms,
		Bathrooms:     request.Bathrooms,
		RegularPrice:  request.RegularPrice,
		DiscountPrice: request.DiscountPrice,
		ImageURLs:     request.ImageURLs,
	}
}
