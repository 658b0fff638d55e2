package cardbrand

import (
	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"github.com/hugochinchilla79/cardbrand/models"
)

const (
	// minBrandLength is the shortest input checked against brand patterns.
	minBrandLength = 15
	// maxBrandLength is the longest input that can be a card number.
	maxBrandLength = 16
)

// Classifier classifies card numbers. The zero value is not usable; use
// NewClassifier. A Classifier is safe for concurrent use.
type Classifier struct {
	logger *zap.Logger
	icons  IconResolver
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for debug output. Card numbers are only
// ever logged masked.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIconResolver sets how icon identifiers are turned into asset paths.
func WithIconResolver(r IconResolver) Option {
	return func(c *Classifier) {
		c.icons = r
	}
}

// NewClassifier creates a Classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClassifierFromConfig creates a Classifier using the icon settings in cfg.
func NewClassifierFromConfig(cfg Config, logger *zap.Logger) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewClassifier(
		WithLogger(logger),
		WithIconResolver(IconResolver{Dir: cfg.IconDir, Ext: cfg.IconExt}),
	), nil
}

var defaultClassifier = NewClassifier()

// Classify returns the brand of a card number that may still be being typed.
//
// Up to 14 characters the number is Undetermined as long as it is made of
// decimal digits. At 15 or 16 characters it must match one of the brand
// patterns. Anything longer is Invalid. Characters are grapheme clusters,
// so a letter followed by a combining accent counts once.
func Classify(number string) Brand {
	return defaultClassifier.Classify(number)
}

// IsValid reports whether number is a known brand or a digit-only prefix of
// one. Only Invalid is not valid.
func IsValid(number string) bool {
	return defaultClassifier.IsValid(number)
}

// IconIdentifier returns the icon identifier for the brand of number.
func IconIdentifier(number string) (string, bool) {
	return defaultClassifier.IconIdentifier(number)
}

// Describe classifies number and gathers everything known about the result.
func Describe(number string) models.Classification {
	return defaultClassifier.Describe(number)
}

// Classify is the Classifier counterpart of the package-level Classify.
func (c *Classifier) Classify(number string) Brand {
	brand := classify(number)
	if ce := c.logger.Check(zap.DebugLevel, "classified card number"); ce != nil {
		ce.Write(
			zap.String("number", MaskNumber(number)),
			zap.Stringer("brand", brand),
		)
	}
	return brand
}

// IsValid reports whether number classifies as anything but Invalid.
func (c *Classifier) IsValid(number string) bool {
	return c.Classify(number) != Invalid
}

// IconIdentifier returns the icon identifier for the brand of number.
func (c *Classifier) IconIdentifier(number string) (string, bool) {
	return Icon(c.Classify(number))
}

// Describe classifies number and resolves its icon path with the
// Classifier's IconResolver.
func (c *Classifier) Describe(number string) models.Classification {
	brand := c.Classify(number)
	out := models.Classification{
		Masked:       MaskNumber(number),
		Brand:        brand.String(),
		Valid:        brand != Invalid,
		CardTypeCode: brand.CardTypeCode(),
	}
	if id, ok := Icon(brand); ok {
		out.Icon = id
		out.IconPath, _ = c.icons.Resolve(brand)
	}
	return out
}

func classify(number string) Brand {
	switch n := uniseg.GraphemeClusterCount(number); {
	case n < minBrandLength:
		if !isDigits(number) {
			return Invalid
		}
		return Undetermined
	case n <= maxBrandLength:
		// Every pattern is tried; a later match replaces an earlier one.
		brand := Invalid
		for _, b := range knownBrands {
			if brandPatterns[b].MatchString(number) {
				brand = b
			}
		}
		return brand
	default:
		return Invalid
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
