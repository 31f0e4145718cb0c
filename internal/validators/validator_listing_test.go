// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/require"
)

func validListingRequest() models.ListingRequest {
	return models.ListingRequest{
		Name:         "cozy flat",
		Description:  "two rooms downtown",
		Address:      "1 Main St",
		Type:         models.ListingTypeRent,
		Bedrooms:     2,
		Bathrooms:    1,
		RegularPrice: 1500,
		ImageURLs:    []string{"https://img.example.com/a.jpg"},
	}
}

func TestNewListingValidator(t *testing.T) {
	v := NewListingValidator()
	require.NotNil(t, v)
}

func TestListingValidate_Dispatch(t *testing.T) {
	v := NewListingValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("ListingRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validListingRequest()))
	})

	t.Run("ListingRequest pointer", func(t *testing.T) {
		req := validListingRequest()
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validListingRequest(), "no-such-field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestValidateListingRequest(t *testing.T) {
	v := NewListingValidator()
	ctx := context.Background()

	sixURLs := []string{"a", "b", "c", "d", "e", "f"}
	sevenURLs := append(append([]string{}, sixURLs...), "g")

	tests := []struct {
		name    string
		mutate  func(*models.ListingRequest)
		wantErr error
	}{
		{"valid", func(r *models.ListingRequest) {}, nil},
		{"empty name", func(r *models.ListingRequest) { r.Name = " " }, ErrEmptyListingName},
		{"empty description", func(r *models.ListingRequest) { r.Description = "" }, ErrEmptyDescription},
		{"empty address", func(r *models.ListingRequest) { r.Address = "" }, ErrEmptyAddress},
		{"bad type", func(r *models.ListingRequest) { r.Type = "lease" }, ErrInvalidListingType},
		{"sale type is fine", func(r *models.ListingRequest) { r.Type = models.ListingTypeSale }, nil},
		{"zero bedrooms", func(r *models.ListingRequest) { r.Bedrooms = 0 }, ErrInvalidRoomCount},
		{"zero bathrooms", func(r *models.ListingRequest) { r.Bathrooms = 0 }, ErrInvalidRoomCount},
		{"zero price", func(r *models.ListingRequest) { r.RegularPrice = 0 }, ErrInvalidPrice},
		{"negative discount", func(r *models.ListingRequest) { r.DiscountPrice = -1 }, ErrInvalidDiscount},
		{
			"discount equal to regular is allowed",
			func(r *models.ListingRequest) { r.Offer = true; r.DiscountPrice = r.RegularPrice },
			nil,
		},
		{
			"valid offer",
			func(r *models.ListingRequest) { r.Offer = true; r.DiscountPrice = r.RegularPrice - 100 },
			nil,
		},
		{
			"discount above regular with offer",
			func(r *models.ListingRequest) { r.Offer = true; r.DiscountPrice = r.RegularPrice + 1 },
			ErrInvalidDiscount,
		},
		{
			"discount above regular without offer",
			func(r *models.ListingRequest) { r.DiscountPrice = r.RegularPrice * 2 },
			ErrInvalidDiscount,
		},
		{"no images", func(r *models.ListingRequest) { r.ImageURLs = nil }, ErrInvalidImageCount},
		{"six images is the cap", func(r *models.ListingRequest) { r.ImageURLs = sixURLs }, nil},
		{"seven images", func(r *models.ListingRequest) { r.ImageURLs = sevenURLs }, ErrInvalidImageCount},
		{"blank image url", func(r *models.ListingRequest) { r.ImageURLs = []string{" "} }, ErrEmptyImageURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validListingRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
