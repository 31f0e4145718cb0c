package models

import "time"

// Listing transaction types. A listing is either offered for sale or for
// rent; no other values are accepted at the boundary.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// Limits on the ordered image gallery attached to every listing.
const (
	MinListingImages = 1
	MaxListingImages = 6
)

// Listing is a property record created and owned by a single user.
// All mutations are authorized against OwnerID.
type Listing struct {
	// ID is the internal unique identifier of the listing.
	ID int64 `json:"id"`

	// Name is the short human-readable title of the property.
	Name string `json:"name"`

	// Description is the free-form property description.
	Description string `json:"description"`

	// Address is the postal address of the property.
	Address string `json:"address"`

	// Type is the transaction type: [ListingTypeSale] or [ListingTypeRent].
	Type string `json:"type"`

	// Parking reports whether the property includes a parking spot.
	Parking bool `json:"parking"`

	// Furnished reports whether the property is furnished.
	Furnished bool `json:"furnished"`

	// Offer reports whether a discounted price is currently offered.
	Offer bool `json:"offer"`

	// Bedrooms is the number of bedrooms. Always positive.
	Bedrooms int `json:"bedrooms"`

	// Bathrooms is the number of bathrooms. Always positive.
	Bathrooms int `json:"bathrooms"`

	// RegularPrice is the base price of the listing.
	RegularPrice int64 `json:"regularPrice"`

	// DiscountPrice is the discounted price. Never exceeds RegularPrice
	// when Offer is set.
	DiscountPrice int64 `json:"discountPrice"`

	// ImageURLs is the ordered gallery of image URLs, between
	// [MinListingImages] and [MaxListingImages] entries.
	ImageURLs []string `json:"imageUrls"`

	// OwnerID references the user who created the listing and is the
	// authorization pivot for every mutation.
	OwnerID int64 `json:"userRef"`

	// CreatedAt is the timestamp when the listing was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Listing model.
func (l Listing) TableName() string {
	return "listings"
}
