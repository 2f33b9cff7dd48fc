package model

import "github.com/dhorizons/passgen/internal/generator"

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and explicit values.
type GenerateRequest struct {
	Length   *int  `json:"length"`
	Alphabet *bool `json:"alphabet"`
	Digits   *bool `json:"digits"`
	Special  *bool `json:"special"`
	Hash     bool  `json:"hash"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string             `json:"password"`
	Length   int                `json:"length"`
	Groups   []string           `json:"groups"`
	Strength generator.Strength `json:"strength"`
	Hash     string             `json:"hash,omitempty"`
}
