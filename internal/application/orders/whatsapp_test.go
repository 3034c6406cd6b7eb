package orders

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
)

func TestWhatsAppLink(t *testing.T) {
	order := &entity.Order{
		Number: "AGC-2025-00042",
		Items: []entity.OrderItem{
			{ProductName: "Fuba de milho", Quantity: decimal.NewFromInt(3)},
		},
	}
	order.Items[0].UnitPrice = decimal.NewFromInt(500)
	order.RecalculateTotals()

	link := WhatsAppLink("+244923000000", order)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/244923000000?text="), "prefixo '+' removido do número")

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")
	assert.Contains(t, msg, "AGC-2025-00042")
	assert.Contains(t, msg, "Fuba de milho")
	assert.Contains(t, msg, "Kz")
}
