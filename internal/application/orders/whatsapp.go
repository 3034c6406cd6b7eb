package orders

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/pkg/money"
)

// WhatsAppLink constrói o deep link wa.me que a loja usa para finalizar o
// pedido: abre uma conversa com o número da AgriConecta e uma mensagem
// pré-preenchida com o resumo do pedido e o valor a transferir.
func WhatsAppLink(number string, order *entity.Order) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	var b strings.Builder
	fmt.Fprintf(&b, "Olá AgriConecta! Fiz o pedido %s no valor de %s.\n", order.Number, money.FormatKz(order.Total))
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x %s\n", item.Quantity.String(), item.ProductName)
	}
	b.WriteString("Segue em anexo o comprovativo da transferência.")

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(b.String())
}
