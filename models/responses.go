package models

// Confirmation is the structured success payload returned by operations
// that do not echo a resource back (e.g. car deletion). Handlers return
// either a resource or a Confirmation, never an untyped mix.
type Confirmation struct {
	Message string `json:"message"`
}

// APIError is the error payload written for every failed request.
type APIError struct {
	// Detail is a human-readable description of the failure, naming the
	// resource where applicable.
	Detail string `json:"detail"`
}
