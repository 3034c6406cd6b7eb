package orders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agriconecta/agriconecta-api/internal/domain"
)

// orderNumberPrefix prefixo dos números de pedido: AGC-<ano>-<5 dígitos>.
const orderNumberPrefix = "AGC"

// maxOrderSeq tecto da sequência anual. A largura fixa de 5 dígitos é o que
// faz a ordenação lexicográfica de LatestNumberForYear coincidir com a
// numérica; ultrapassá-la emitiria números de 6 dígitos que ordenam abaixo
// dos de 5 e reemitiria sequências já usadas.
const maxOrderSeq = 99999

// NextOrderNumber calcula o próximo número sequencial do ano a partir do maior
// já emitido (string vazia se o ano ainda não tem pedidos). A unicidade final
// é garantida pelo índice único na DB; chamadas concorrentes que leiam o mesmo
// "maior até agora" são resolvidas por retry no checkout.
func NextOrderNumber(year int, latest string) (string, error) {
	seq := 1
	if latest != "" {
		parts := strings.Split(latest, "-")
		if len(parts) != 3 || parts[0] != orderNumberPrefix {
			return "", fmt.Errorf("número de pedido malformado %q: %w", latest, domain.ErrInvalidInput)
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", fmt.Errorf("sequência inválida em %q: %w", latest, domain.ErrInvalidInput)
		}
		seq = n + 1
	}
	if seq > maxOrderSeq {
		return "", fmt.Errorf("sequência anual de números de pedido esgotada (%d em %d)", maxOrderSeq, year)
	}
	return fmt.Sprintf("%s-%d-%05d", orderNumberPrefix, year, seq), nil
}
