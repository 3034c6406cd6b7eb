// Package qrcode gera o PNG do QR de pagamento por transferência bancária,
// com a referência do pedido embutida.
package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
)

var _ orders.PaymentQRGenerator = (*Generator)(nil)

// Generator implementa orders.PaymentQRGenerator sobre boombuler/barcode.
type Generator struct{}

func New() *Generator { return &Generator{} }

// GeneratePaymentQR codifica os dados de transferência num QR e devolve o PNG.
// size é o lado do quadrado em pixels; valores abaixo do mínimo do símbolo
// fazem o Scale falhar, por isso impomos um mínimo razoável.
func (g *Generator) GeneratePaymentQR(order *entity.Order, pay orders.PaymentInfo, size int) ([]byte, error) {
	if size < 128 {
		size = 128
	}
	data := fmt.Sprintf("IBAN:%s;BENEF:%s;REF:%s;VALOR:%s",
		pay.IBAN, pay.Beneficiary, order.Number, order.Total.StringFixed(2))

	code, err := qr.Encode(data, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr scale: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("qr png: %w", err)
	}
	return buf.Bytes(), nil
}
