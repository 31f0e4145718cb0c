package models

// APIError is the uniform error body returned by every failing endpoint:
//
//	{ "success": false, "statusCode": 403, "message": "..." }
//
// Successful responses return the resource (or resource list) directly.
type APIError struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Message is a minimal confirmation body for endpoints that have no
// resource to return (sign-out, deletions).
type Message struct {
	Message string `json:"message"`
}
