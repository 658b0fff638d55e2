package cardbrand

// AcceptsInput reports whether an entry field should accept replacement as
// an edit to a card number. Only decimal digits are accepted; an empty
// replacement is a deletion and is always accepted.
func AcceptsInput(replacement string) bool {
	return isDigits(replacement)
}
