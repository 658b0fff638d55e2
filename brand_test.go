package cardbrand_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/cardbrand"
)

func TestKnownBrands_Order(t *testing.T) {
	require.Equal(t, []cardbrand.Brand{
		cardbrand.AmericanExpress,
		cardbrand.Mastercard,
		cardbrand.Visa,
	}, cardbrand.KnownBrands())

	// Callers get a copy.
	brands := cardbrand.KnownBrands()
	brands[0] = cardbrand.Invalid
	require.Equal(t, cardbrand.AmericanExpress, cardbrand.KnownBrands()[0])
}

func TestBrand_Patterns(t *testing.T) {
	p, ok := cardbrand.AmericanExpress.Pattern()
	require.True(t, ok)
	require.Equal(t, `3[47][0-9]{13}`, p)

	p, ok = cardbrand.Mastercard.Pattern()
	require.True(t, ok)
	require.Equal(t, `^(5[1-5][0-9]{14}|2(22[1-9][0-9]{12}|2[3-9][0-9]{13}|[3-6][0-9]{14}|7[0-1][0-9]{13}|720[0-9]{12}))$`, p)

	p, ok = cardbrand.Visa.Pattern()
	require.True(t, ok)
	require.Equal(t, `^4[0-9]{12}(?:[0-9]{3})?$`, p)

	for _, b := range []cardbrand.Brand{cardbrand.Undetermined, cardbrand.Invalid} {
		_, ok := b.Pattern()
		require.False(t, ok)
		require.False(t, b.Known())
	}
}

func TestBrand_CardTypeCode(t *testing.T) {
	require.Equal(t, "001", cardbrand.Visa.CardTypeCode())
	require.Equal(t, "002", cardbrand.Mastercard.CardTypeCode())
	require.Equal(t, "003", cardbrand.AmericanExpress.CardTypeCode())
	require.Empty(t, cardbrand.Undetermined.CardTypeCode())
	require.Empty(t, cardbrand.Invalid.CardTypeCode())
}

func TestBrand_Names(t *testing.T) {
	for _, b := range []cardbrand.Brand{
		cardbrand.Undetermined,
		cardbrand.AmericanExpress,
		cardbrand.Mastercard,
		cardbrand.Visa,
		cardbrand.Invalid,
	} {
		parsed, err := cardbrand.ParseBrand(b.String())
		require.NoError(t, err)
		require.Equal(t, b, parsed)
	}

	_, err := cardbrand.ParseBrand("discover")
	require.Error(t, err)
	require.Equal(t, "Brand(42)", cardbrand.Brand(42).String())
}

func TestBrand_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]cardbrand.Brand{"brand": cardbrand.AmericanExpress})
	require.NoError(t, err)
	require.JSONEq(t, `{"brand":"american_express"}`, string(data))

	var out struct {
		Brand cardbrand.Brand `json:"brand"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"brand":"visa"}`), &out))
	require.Equal(t, cardbrand.Visa, out.Brand)

	require.Error(t, json.Unmarshal([]byte(`{"brand":"jcb"}`), &out))
}
