package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-estate/models"
)

// Field name constants for listing validation scoping.
const (
	// FieldListingName targets the listing title.
	FieldListingName = "listing name"

	// FieldDescription targets the free-form listing description.
	FieldDescription = "description"

	// FieldAddress targets the property address.
	FieldAddress = "address"

	// FieldListingType targets the transaction type (sale or rent).
	FieldListingType = "listing type"

	// FieldRooms targets the bedroom and bathroom counts.
	FieldRooms = "rooms"

	// FieldPrices targets the regular/discount price pair. The discount
	// may never exceed the regular price, offer flag or not.
	FieldPrices = "prices"

	// FieldImages targets the ordered image gallery.
	FieldImages = "images"
)

// ListingValidator implements the Validator interface for
// models.ListingRequest, the payload shared by listing creation and
// full-record updates.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type ListingValidator struct {
}

// NewListingValidator constructs a new ListingValidator
// and returns it as the Validator interface.
func NewListingValidator() Validator {
	return &ListingValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.ListingRequest / *models.ListingRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ListingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ListingRequest:
		return v.validateListingRequest(ctx, value, fields...)
	case *models.ListingRequest:
		return v.validateListingRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ListingValidator) validateListingRequest(_ context.Context, request models.ListingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldListingName, FieldDescription, FieldAddress, FieldListingType, FieldRooms, FieldPrices, FieldImages}
	}

	for _, f := range fields {
		switch f {
		case FieldListingName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyListingName
			}
		case FieldDescription:
			if strings.TrimSpace(request.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldAddress:
			if strings.TrimSpace(request.Address) == "" {
				return ErrEmptyAddress
			}
		case FieldListingType:
			if request.Type != models.ListingTypeSale && request.Type != models.ListingTypeRent {
				return ErrInvalidListingType
			}
		case FieldRooms:
			if request.Bedrooms < 1 || request.Bathrooms < 1 {
				return ErrInvalidRoomCount
			}
		case FieldPrices:
			if request.RegularPrice <= 0 {
				return ErrInvalidPrice
			}
			if request.DiscountPrice < 0 {
				return ErrInvalidDiscount
			}
			if request.DiscountPrice > request.RegularPrice {
				return ErrInvalidDiscount
			}
		case FieldImages:
			if len(request.ImageURLs) < models.MinListingImages || len(request.ImageURLs) > models.MaxListingImages {
				return ErrInvalidImageCount
			}
			for _, url := range request.ImageURLs {
				if strings.TrimSpace(url) == "" {
					return ErrEmptyImageURL
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
