package cardbrand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/cardbrand"
)

func TestMaskNumber(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"37", "**"},
		{"3712", "****"},
		{"5532584", "***2584"},
		{"343047786517463", "343047*****7463"},
		{"4425218577312280", "442521******2280"},
		{"abcd12345678", "abcd12**5678"},
		{"12e\u0301", "***"},
		{"343047786517463e\u0301", "343047******463e\u0301"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, cardbrand.MaskNumber(c.in), c.in)
	}
}
