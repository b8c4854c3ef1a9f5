package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// SendFunc delivers a prepared e-mail. Production uses SMTP with plain auth.
type SendFunc func(e *email.Email) error

type EmailNotifier struct {
	from string
	to   []string
	send SendFunc
	tmpl *template.Template
}

func SMTPSender(host string, port int, user, password string) SendFunc {
	addr := fmt.Sprintf("%s:%d", host, port)
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return func(e *email.Email) error {
		return e.Send(addr, auth)
	}
}

func NewEmailNotifier(from string, to []string, send SendFunc) *EmailNotifier {
	if send == nil {
		panic("email send func cannot be nil")
	}
	return &EmailNotifier{
		from: from,
		to:   to,
		send: send,
		tmpl: template.Must(template.New("orderEmail").Parse(orderEmailTemplate)),
	}
}

func (e *EmailNotifier) Name() string {
	return "email"
}

// Notify gives up when ctx expires, the SMTP exchange itself keeps running in the background.
func (e *EmailNotifier) Notify(ctx context.Context, n OrderNotification) error {
	html, err := e.render(n)
	if err != nil {
		return err
	}

	msg := email.NewEmail()
	msg.From = e.from
	msg.To = e.to
	msg.Subject = fmt.Sprintf("New order %s", n.OrderID)
	msg.HTML = []byte(html)
	msg.Text = []byte(fmt.Sprintf("Order %s\n%s\nTotal: ₹%d", n.OrderID, n.ItemsText(), n.Total))

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.send(msg)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send order email %s: %w", n.OrderID, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *EmailNotifier) render(n OrderNotification) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, n); err != nil {
		return "", fmt.Errorf("failed to render order email: %w", err)
	}
	return buf.String(), nil
}

const orderEmailTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New order {{.OrderID}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #b5541c; color: white; padding: 16px; text-align: center; }
        table { width: 100%; border-collapse: collapse; }
        td, th { padding: 6px; border-bottom: 1px solid #eee; text-align: left; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Order {{.OrderID}}</h2></div>
        <p><strong>{{.CustomerName}}</strong> ({{.CustomerPhone}})</p>
        <p>{{.CustomerAddress}}</p>
        <table>
            <tr><th>Item</th><th>Qty</th><th>Price</th></tr>
            {{range .Items}}<tr><td>{{.Name}}</td><td>{{.Qty}}</td><td>₹{{.Price}}</td></tr>{{end}}
        </table>
        <p>Total: <strong>₹{{.Total}}</strong></p>
        <p>Payment: {{.PaymentStatus}}</p>
        <p>Expected delivery: {{.DeliveryEstimate}}</p>
    </div>
</body>
</html>
`
