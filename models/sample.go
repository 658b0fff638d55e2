package models

// Sample is a labelled card number with the brand it is expected to
// classify as.
type Sample struct {
	Name   string `yaml:"name" json:"name"`
	Number string `yaml:"number" json:"number"`

	// Expect is a brand name as produced by Brand.String.
	Expect string `yaml:"expect" json:"expect"`
}
