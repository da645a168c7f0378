// Package domain holds DTOs for the preferences http and service contracts
package domain

import "context"

// LanguageView is the stored or default display language of one client
type LanguageView struct {
	ClientID string `json:"client_id" example:"5b0c9a4e-8f51-4a5c-9d77-0c1a2b3c4d5e"`
	Lang     string `json:"lang" example:"ro"`
	// Stored is false when the default was returned
	Stored bool `json:"stored" example:"true"`
}

// SetLanguageInput changes the display language
type SetLanguageInput struct {
	Lang string `json:"lang" validate:"required,max=35" example:"en"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Language(ctx context.Context, clientID string) (LanguageView, error)
	SetLanguage(ctx context.Context, clientID, lang string) (LanguageView, error)
}
