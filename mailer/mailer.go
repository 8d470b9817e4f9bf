// Package mailer sends the order notification emails over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/ministore/storefront/models"
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

type SMTP struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *SMTP {
	return &SMTP{cfg: cfg, log: log}
}

// SendCustomerConfirmation emails the order summary to the buyer.
func (m *SMTP) SendCustomerConfirmation(ctx context.Context, o models.Order) error {
	subject := fmt.Sprintf("Order Confirmation - %s", o.ProductName)
	body, err := render(customerTmpl, o)
	if err != nil {
		return err
	}
	return m.send([]string{o.Email}, subject, body)
}

// SendAdminAlert emails the shop operator about a new order.
func (m *SMTP) SendAdminAlert(ctx context.Context, o models.Order) error {
	subject := fmt.Sprintf("New Order: %s", o.ProductName)
	body, err := render(adminTmpl, o)
	if err != nil {
		return err
	}
	return m.send([]string{m.cfg.AdminEmail}, subject, body)
}

func (m *SMTP) send(to []string, subject, htmlBody string) error {
	if m.cfg.Host == "" {
		// No relay configured; stay offline rather than fail every order.
		m.log.Debug("smtp not configured, skipping email", zap.Strings("to", to))
		return nil
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n%s\r\n%s", to[0], subject, mime, htmlBody))

	return smtp.SendMail(addr, auth, m.cfg.From, to, msg)
}

func render(t *template.Template, o models.Order) (string, error) {
	savings := o.OriginalPrice.Sub(o.FinalPrice)
	data := struct {
		models.Order
		Savings    string
		HasVoucher bool
	}{
		Order:      o,
		Savings:    savings.String(),
		HasVoucher: o.VoucherCode != "" && savings.IsPositive(),
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return body.String(), nil
}

var customerTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1>Order Confirmed!</h1>
  <p>Hi {{.Name}},</p>
  <p>Your order has been successfully placed. Here are your order details:</p>
  <h3>Order Summary</h3>
  <p><strong>Order ID:</strong> {{.OrderID}}</p>
  <p><strong>Product:</strong> {{.ProductName}}</p>
  <p><strong>Original Price:</strong> {{.OriginalPrice}}</p>
  {{if .HasVoucher}}<p><strong>Discount ({{.VoucherCode}}):</strong> -{{.Savings}}</p>{{end}}
  <p><strong>Total Paid:</strong> {{.FinalPrice}}</p>
  <h3>Shipping Information</h3>
  <p>{{.Name}}<br>{{.Email}}<br>{{.Phone}}<br>{{.Address}}</p>
  <p>We'll send you another email when your order ships.</p>
</body>
</html>`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Order Received</h2>
  <p><strong>Order ID:</strong> {{.OrderID}}</p>
  <p><strong>Product:</strong> {{.ProductName}} ({{.ProductID}})</p>
  <p><strong>Price:</strong> {{.OriginalPrice}}</p>
  {{if .HasVoucher}}<p><strong>Voucher:</strong> {{.VoucherCode}}</p>{{end}}
  <p><strong>Final Price:</strong> {{.FinalPrice}}</p>
  <p><strong>Order Date:</strong> {{.OrderDate}}</p>
  <h3>Customer</h3>
  <p>{{.Name}}<br>{{.Email}}<br>{{.Phone}}<br>{{.Address}}</p>
</body>
</html>`))
