package domain

// Confirmation is the payload returned by operations that only acknowledge success
type Confirmation struct {
	Message string `json:"message"`
}
