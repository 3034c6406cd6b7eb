package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// O separador de milhares em pt-PT é o espaço não separável (U+00A0).
const nbsp = " "

func TestFormatKz(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00 Kz"},
		{"500", "500,00 Kz"},
		{"4500", "4" + nbsp + "500,00 Kz"},
		{"1500.5", "1" + nbsp + "500,50 Kz"},
		{"1234567.89", "1" + nbsp + "234" + nbsp + "567,89 Kz"},
		{"0.5", "0,50 Kz"},
		{"-1500.5", "-1" + nbsp + "500,50 Kz"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, FormatKz(d), "entrada %s", c.in)
	}
}

func TestFormat_SemSimbolo(t *testing.T) {
	d := decimal.RequireFromString("4500")
	assert.Equal(t, "4"+nbsp+"500,00", Format(d))
}

// Montantes acima da precisão de float64 (2^53) têm de formatar sem perda.
func TestFormat_MontanteAlemDePrecisaoFloat64(t *testing.T) {
	d := decimal.RequireFromString("9007199254740993.11")
	want := "9" + nbsp + "007" + nbsp + "199" + nbsp + "254" + nbsp + "740" + nbsp + "993,11"
	assert.Equal(t, want, Format(d))
}
