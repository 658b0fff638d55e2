package cardbrand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/cardbrand"
)

func TestIcon(t *testing.T) {
	cases := map[cardbrand.Brand]string{
		cardbrand.AmericanExpress: "card-amex",
		cardbrand.Mastercard:      "card-mastercard",
		cardbrand.Visa:            "card-visa",
	}
	for b, want := range cases {
		got, ok := cardbrand.Icon(b)
		require.True(t, ok, b.String())
		require.Equal(t, want, got)
	}

	_, ok := cardbrand.Icon(cardbrand.Undetermined)
	require.False(t, ok)
	_, ok = cardbrand.Icon(cardbrand.Invalid)
	require.False(t, ok)
}

func TestIconResolver(t *testing.T) {
	got, ok := cardbrand.IconResolver{}.Resolve(cardbrand.Visa)
	require.True(t, ok)
	require.Equal(t, "card-visa", got)

	got, ok = cardbrand.IconResolver{Dir: "static/cards/", Ext: ".png"}.Resolve(cardbrand.Mastercard)
	require.True(t, ok)
	require.Equal(t, "static/cards/card-mastercard.png", got)

	_, ok = cardbrand.IconResolver{Dir: "static"}.Resolve(cardbrand.Invalid)
	require.False(t, ok)
}
