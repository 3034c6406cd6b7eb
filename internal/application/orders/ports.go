package orders

import (
	"context"

	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

// TxRunner executa um callback dentro de uma transacção com repositórios
// atados à tx. O checkout (stock + pedido + numeração) e as transições de
// estado (estado + histórico) correm inteiros dentro de uma transacção.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Notifier colaborador de email transaccional. Os erros nunca abortam nem
// revertem a operação que os disparou: o caller regista e segue.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *entity.Order, toEmail string) error
	SendStateChangeEmail(ctx context.Context, order *entity.Order, from, to entity.OrderState, nota, toEmail string) error
}

// PaymentInfo dados bancários e de contacto que acompanham o pedido
// (factura PDF, QR de pagamento, link WhatsApp).
type PaymentInfo struct {
	BankName    string
	IBAN        string
	Beneficiary string
	WhatsApp    string
}

// InvoicePDFGenerator gera a factura proforma do pedido em PDF.
type InvoicePDFGenerator interface {
	GenerateOrderInvoice(ctx context.Context, order *entity.Order, customer *entity.User, pay PaymentInfo) ([]byte, error)
}

// PaymentQRGenerator gera o PNG do QR de pagamento por transferência.
type PaymentQRGenerator interface {
	GeneratePaymentQR(order *entity.Order, pay PaymentInfo, size int) ([]byte, error)
}
