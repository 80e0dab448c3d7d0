package models

import "time"

// DesignConfig holds the page-wide visual settings.
type DesignConfig struct {
	PrimaryColor   string `json:"primaryColor" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondaryColor" validate:"required,hexcolor"`
	FontFamily     string `json:"fontFamily" validate:"required"`
	ButtonStyle    string `json:"buttonStyle" validate:"required,oneof=rounded square pill"`
}

// DefaultDesign returns the design applied when the generator omits one.
func DefaultDesign() DesignConfig {
	return DesignConfig{
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#8b5cf6",
		FontFamily:     "Inter",
		ButtonStyle:    "rounded",
	}
}

// IntegrationConfig holds optional keys/URLs for external services the
// published page may talk to. All fields are optional.
type IntegrationConfig struct {
	WebhookURL       string `json:"webhookUrl,omitempty"`
	EmailService     string `json:"emailService,omitempty" validate:"omitempty,oneof=mailchimp convertkit activecampaign"`
	EmailAPIKey      string `json:"emailApiKey,omitempty"`
	GTMID            string `json:"gtmId,omitempty"`
	FacebookPixelID  string `json:"facebookPixelId,omitempty"`
	StripeKey        string `json:"stripeKey,omitempty"`
	PaypalClientID   string `json:"paypalClientId,omitempty"`
	HotmartProductID string `json:"hotmartProductId,omitempty"`
}

// LandingPage is the full landing-page configuration: the document the
// editor renders and the generator produces. Timestamps serialize as
// ISO-8601.
type LandingPage struct {
	ID           string            `json:"id" validate:"required"`
	Name         string            `json:"name" validate:"required"`
	Sections     SectionList       `json:"sections"`
	Design       DesignConfig      `json:"design"`
	Integrations IntegrationConfig `json:"integrations"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
