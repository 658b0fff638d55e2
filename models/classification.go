package models

// Classification is the full answer for a single card number, as returned
// by the HTTP API and printed by the command line tool.
type Classification struct {
	// Masked is the input with all but the BIN and last four digits hidden.
	Masked string `json:"masked"`

	// Brand is the brand name: american_express, mastercard, visa,
	// undetermined or invalid.
	Brand string `json:"brand"`

	// Valid is false only for invalid input. A partial number that is all
	// digits is valid so far.
	Valid bool `json:"valid"`

	// Icon is the image asset identifier (e.g. "card-visa").
	// Empty when the brand has no icon.
	Icon string `json:"icon,omitempty"`

	// IconPath is Icon resolved against the configured asset directory.
	IconPath string `json:"icon_path,omitempty"`

	// CardTypeCode is the CyberSource card type code (e.g. "001" for Visa).
	CardTypeCode string `json:"card_type_code,omitempty"`
}

// BrandInfo describes a known brand.
type BrandInfo struct {
	Brand        string `json:"brand"`
	Pattern      string `json:"pattern"`
	Icon         string `json:"icon"`
	CardTypeCode string `json:"card_type_code"`
}
