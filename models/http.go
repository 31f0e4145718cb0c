package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /api/auth/signin. Identifier accepts
// either a username or an e-mail address.
type SignInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// OAuthRequest is the body of POST /api/auth/google: the profile data
// returned by the federated identity provider.
type OAuthRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// UpdateProfileRequest is the body of POST /api/user/update/{id}.
// Zero-valued fields are left unchanged; Password, when non-empty, is
// re-hashed before persisting.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// ListingRequest carries the client-supplied listing fields for both
// POST /api/listing/create and POST /api/listing/update/{id}.
// Updates use full-record replace semantics.
type ListingRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	Type          string   `json:"type"`
	Parking       bool     `json:"parking"`
	Furnished     bool     `json:"furnished"`
	Offer         bool     `json:"offer"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	RegularPrice  int64    `json:"regularPrice"`
	DiscountPrice int64    `json:"discountPrice"`
	ImageURLs     []string `json:"imageUrls"`
}

// SearchQuery holds the predicate filters of GET /api/listing/search.
// Nil boolean filters match both values; Type "all" or "" matches both
// transaction types.
type SearchQuery struct {
	SearchTerm string
	Type       string
	Offer      *bool
	Furnished  *bool
	Parking    *bool
	Limit      uint64
	Offset     uint64
}

// DefaultSearchLimit caps the result set when the client does not specify
// a limit.
const DefaultSearchLimit = 9
