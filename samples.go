package cardbrand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hugochinchilla79/cardbrand/models"
)

// DefaultSamples returns the built-in catalog of labelled card numbers:
// one complete number per brand, a digit-only prefix of each, and the
// usual ways of getting it wrong.
func DefaultSamples() []models.Sample {
	return []models.Sample{
		{Name: "American Express", Number: "343047786517463", Expect: AmericanExpress.String()},
		{Name: "Mastercard", Number: "5127179035326007", Expect: Mastercard.String()},
		{Name: "Visa", Number: "4425218577312280", Expect: Visa.String()},
		{Name: "Valid Partial AmEx", Number: "3712", Expect: Undetermined.String()},
		{Name: "Valid Partial MC", Number: "5532584", Expect: Undetermined.String()},
		{Name: "Valid Partial Visa", Number: "41004004334772", Expect: Undetermined.String()},
		{Name: "Invalid 15 Chars", Number: "012345678912345", Expect: Invalid.String()},
		{Name: "Invalid 16 Chars", Number: "0123456789123456", Expect: Invalid.String()},
		{Name: "Invalid 4 Chars", Number: "abc123", Expect: Invalid.String()},
		{Name: "Invalid Chars 15", Number: "abcd12345678912", Expect: Invalid.String()},
		{Name: "Invalid Chars 16", Number: "abcd123456789123", Expect: Invalid.String()},
		{Name: "Invalid Too Long (17 Chars)", Number: "01234567890123456", Expect: Invalid.String()},
	}
}

// LoadSamples reads a YAML sample catalog, a list of mappings with name,
// number and expect keys:
//
//	[{name: Visa, number: "4425218577312280", expect: visa}]
func LoadSamples(path string) ([]models.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cardbrand: read samples %s: %w", path, err)
	}
	return ParseSamples(data)
}

// ParseSamples decodes a YAML sample catalog and checks that every expected
// brand name is known.
func ParseSamples(data []byte) ([]models.Sample, error) {
	var samples []models.Sample
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("cardbrand: parse samples: %w", err)
	}
	for i, s := range samples {
		if _, err := ParseBrand(s.Expect); err != nil {
			return nil, fmt.Errorf("cardbrand: sample %d (%s): %w", i, s.Name, err)
		}
	}
	return samples, nil
}

// CheckSamples classifies every sample with c and returns a
// *SampleMismatchError listing those that did not match their expectation.
func CheckSamples(c *Classifier, samples []models.Sample) error {
	var mismatches []SampleMismatch
	for _, s := range samples {
		expect, err := ParseBrand(s.Expect)
		if err != nil {
			return fmt.Errorf("cardbrand: sample %s: %w", s.Name, err)
		}
		if got := c.Classify(s.Number); got != expect {
			mismatches = append(mismatches, SampleMismatch{
				Name:   s.Name,
				Masked: MaskNumber(s.Number),
				Expect: expect,
				Got:    got,
			})
		}
	}
	if len(mismatches) > 0 {
		return &SampleMismatchError{Mismatches: mismatches}
	}
	return nil
}
