package cardbrand

import "path"

var brandIcons = map[Brand]string{
	AmericanExpress: "card-amex",
	Mastercard:      "card-mastercard",
	Visa:            "card-visa",
}

// Icon returns the image asset identifier for a known brand.
// Undetermined and Invalid have no icon.
func Icon(b Brand) (string, bool) {
	id, ok := brandIcons[b]
	return id, ok
}

// IconResolver turns icon identifiers into asset paths.
type IconResolver struct {
	// Dir is prepended to the identifier. Empty means no directory.
	Dir string

	// Ext is appended to the identifier, including the dot (e.g. ".png").
	Ext string
}

// Resolve returns the asset path of the icon for b.
func (r IconResolver) Resolve(b Brand) (string, bool) {
	id, ok := Icon(b)
	if !ok {
		return "", false
	}
	name := id + r.Ext
	if r.Dir == "" {
		return name, true
	}
	return path.Join(r.Dir, name), true
}
