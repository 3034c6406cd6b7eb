// Package email envia os emails transaccionais do ciclo de vida dos pedidos
// por SMTP. Sem SMTP_HOST configurado opera em modo dev: regista o email no
// log em vez de o enviar.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/pkg/config"
	"github.com/agriconecta/agriconecta-api/pkg/logger"
	"github.com/agriconecta/agriconecta-api/pkg/money"
)

var _ orders.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier implementação de orders.Notifier sobre net/smtp.
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Pedido {{.Numero}} recebido</h2>
<p>Obrigado pela sua compra na AgriConecta. O seu pedido foi registado e aguarda pagamento.</p>
<table border="0" cellpadding="4">
{{range .Itens}}<tr><td>{{.Nome}}</td><td>{{.Quantidade}}</td><td>{{.Subtotal}}</td></tr>
{{end}}</table>
<p>Subtotal: {{.Subtotal}}<br>
Taxa de entrega: {{.TaxaEntrega}}<br>
{{if .Desconto}}Desconto: {{.Desconto}}<br>{{end}}
<strong>Total: {{.Total}}</strong></p>
<p>Endereço de entrega: {{.Endereco}}</p>
`))

var stateChangeTmpl = template.Must(template.New("stateChange").Parse(`
<h2>Pedido {{.Numero}}: {{.EstadoNovo}}</h2>
<p>O estado do seu pedido mudou de <strong>{{.EstadoAnterior}}</strong> para <strong>{{.EstadoNovo}}</strong>.</p>
{{if .Nota}}<p>Nota: {{.Nota}}</p>{{end}}
<p><strong>Total: {{.Total}}</strong></p>
`))

type confirmationData struct {
	Numero      string
	Itens       []confirmationItem
	Subtotal    string
	TaxaEntrega string
	Desconto    string
	Total       string
	Endereco    string
}

type confirmationItem struct {
	Nome       string
	Quantidade string
	Subtotal   string
}

// SendOrderConfirmation envia o email de confirmação de checkout.
func (n *SMTPNotifier) SendOrderConfirmation(ctx context.Context, order *entity.Order, toEmail string) error {
	data := confirmationData{
		Numero:      order.Number,
		Subtotal:    money.FormatKz(order.Subtotal),
		TaxaEntrega: money.FormatKz(order.DeliveryFee),
		Total:       money.FormatKz(order.Total),
		Endereco:    order.DeliveryAddr,
	}
	if !order.Discount.IsZero() {
		data.Desconto = money.FormatKz(order.Discount)
	}
	for _, it := range order.Items {
		data.Itens = append(data.Itens, confirmationItem{
			Nome:       it.ProductName,
			Quantidade: it.Quantity.String(),
			Subtotal:   money.FormatKz(it.Subtotal),
		})
	}

	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}
	subject := fmt.Sprintf("Pedido %s recebido - AgriConecta", order.Number)
	return n.send(ctx, toEmail, subject, body.String())
}

type stateChangeData struct {
	Numero         string
	EstadoAnterior string
	EstadoNovo     string
	Nota           string
	Total          string
}

// SendStateChangeEmail envia a notificação de mudança de estado.
func (n *SMTPNotifier) SendStateChangeEmail(ctx context.Context, order *entity.Order, from, to entity.OrderState, nota, toEmail string) error {
	data := stateChangeData{
		Numero:         order.Number,
		EstadoAnterior: from.Label(),
		EstadoNovo:     to.Label(),
		Nota:           nota,
		Total:          money.FormatKz(order.Total),
	}
	var body bytes.Buffer
	if err := stateChangeTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render state change email: %w", err)
	}
	subject := fmt.Sprintf("Pedido %s: %s - AgriConecta", order.Number, to.Label())
	return n.send(ctx, toEmail, subject, body.String())
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	if !n.cfg.Enabled() {
		n.log.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP desactivado, email não enviado")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", n.cfg.FromName, n.cfg.From)
	raw := buildRaw(from, to, subject, htmlBody)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := smtp.SendMail(n.cfg.Addr(), auth, n.cfg.From, []string{to}, raw); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildRaw(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
