package cardbrand

import (
	"fmt"
	"regexp"
)

// Brand is the result of classifying a card number.
type Brand int

const (
	Undetermined Brand = iota
	AmericanExpress
	Mastercard
	Visa
	Invalid
)

// knownBrands is the order patterns are evaluated in. Do not reorder: when
// several patterns match, the last one wins.
var knownBrands = []Brand{AmericanExpress, Mastercard, Visa}

var brandNames = map[Brand]string{
	Undetermined:    "undetermined",
	AmericanExpress: "american_express",
	Mastercard:      "mastercard",
	Visa:            "visa",
	Invalid:         "invalid",
}

// brandPatterns holds the card number grammar of each known brand.
// The American Express expression is not anchored and matches anywhere
// in the input.
var brandPatterns = map[Brand]*regexp.Regexp{
	AmericanExpress: regexp.MustCompile(`3[47][0-9]{13}`),
	Mastercard:      regexp.MustCompile(`^(5[1-5][0-9]{14}|2(22[1-9][0-9]{12}|2[3-9][0-9]{13}|[3-6][0-9]{14}|7[0-1][0-9]{13}|720[0-9]{12}))$`),
	Visa:            regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`),
}

// CyberSourceCardTypeCode maps a card brand to the CyberSource card type code.
var CyberSourceCardTypeCode = map[Brand]string{
	Visa:            "001",
	Mastercard:      "002",
	AmericanExpress: "003",
}

// KnownBrands returns the brands that have a card number pattern, in
// evaluation order.
func KnownBrands() []Brand {
	out := make([]Brand, len(knownBrands))
	copy(out, knownBrands)
	return out
}

// Known reports whether b is an actual card network.
func (b Brand) Known() bool {
	_, ok := brandPatterns[b]
	return ok
}

// Pattern returns the regular expression source for a known brand.
func (b Brand) Pattern() (string, bool) {
	re, ok := brandPatterns[b]
	if !ok {
		return "", false
	}
	return re.String(), true
}

// CardTypeCode returns the CyberSource card type code, or "" when b is
// not a known brand.
func (b Brand) CardTypeCode() string {
	return CyberSourceCardTypeCode[b]
}

func (b Brand) String() string {
	if name, ok := brandNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Brand(%d)", int(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b Brand) MarshalText() ([]byte, error) {
	name, ok := brandNames[b]
	if !ok {
		return nil, fmt.Errorf("cardbrand: unknown brand %d", int(b))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Brand) UnmarshalText(text []byte) error {
	parsed, err := ParseBrand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBrand returns the Brand with the given name, as produced by String.
func ParseBrand(name string) (Brand, error) {
	for b, n := range brandNames {
		if n == name {
			return b, nil
		}
	}
	return Invalid, fmt.Errorf("cardbrand: unknown brand name %q", name)
}
