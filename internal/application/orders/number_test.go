package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrderNumber_AnoVazio(t *testing.T) {
	n, err := NextOrderNumber(2025, "")
	require.NoError(t, err)
	assert.Equal(t, "AGC-2025-00001", n)
}

func TestNextOrderNumber_Incrementa(t *testing.T) {
	n, err := NextOrderNumber(2024, "AGC-2024-00007")
	require.NoError(t, err)
	assert.Equal(t, "AGC-2024-00008", n)
}

func TestNextOrderNumber_PreservaPadding(t *testing.T) {
	n, err := NextOrderNumber(2025, "AGC-2025-00099")
	require.NoError(t, err)
	assert.Equal(t, "AGC-2025-00100", n)
}

// A largura fixa de 5 dígitos é um invariante da ordenação lexicográfica na
// DB: a sequência nunca pode passar de 99999 num ano.
func TestNextOrderNumber_SequenciaEsgotada(t *testing.T) {
	n, err := NextOrderNumber(2025, "AGC-2025-99998")
	require.NoError(t, err)
	assert.Equal(t, "AGC-2025-99999", n)

	_, err = NextOrderNumber(2025, "AGC-2025-99999")
	assert.Error(t, err, "a sequência não pode alargar para 6 dígitos")
}

func TestNextOrderNumber_Malformado(t *testing.T) {
	_, err := NextOrderNumber(2025, "PED-2025-00001")
	assert.Error(t, err)

	_, err = NextOrderNumber(2025, "AGC-2025-abc")
	assert.Error(t, err)

	_, err = NextOrderNumber(2025, "AGC-2025")
	assert.Error(t, err)
}
