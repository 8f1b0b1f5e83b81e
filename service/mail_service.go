package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"navillera/models"
	"navillera/utils"
)

const orderMailTemplate = `<h2>New bracelet order</h2>
<p><b>{{.Order.CustomerName}}</b> ({{.Order.PhoneNumber}})</p>
<ul>
  <li>Bracelet size: {{.Order.BraceletSize}}</li>
  <li>Meetup place: {{.Order.MeetupPlace}}</li>
  <li>Pickup time: {{.Order.PickupTime}}</li>
  <li>Delivery date: {{.Order.DeliveryDate}}</li>
</ul>
<table border="1" cellpadding="4" cellspacing="0">
  <tr><th>#</th><th>Charm</th><th>Price</th></tr>
  {{range .Order.Charms}}
  <tr><td>{{.Position}}</td><td>{{.Name}}</td><td>{{formatAED .Price}}</td></tr>
  {{end}}
</table>
<p>
  Subtotal: {{formatAED .Order.Subtotal}}<br>
  Delivery: {{formatAED .Order.DeliveryFee}}<br>
  <b>Total: {{formatAED .Order.Total}}</b>
</p>
<p>Submitted at {{.Order.Timestamp}}</p>`

// MailService sends order notification emails over SMTP. When no SMTP host is
// configured the service is disabled and every send is a logged no-op.
type MailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
	tmpl   *template.Template
}

// NewMailServiceFromEnv builds a MailService from SMTP_HOST, SMTP_PORT,
// SMTP_USER, SMTP_PASSWORD, SMTP_FROM and ORDER_NOTIFY_TO. An empty SMTP_HOST
// disables sending.
func NewMailServiceFromEnv() *MailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("⏭️ SMTP not configured, order emails disabled")
		return &MailService{}
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 465
	}
	user := os.Getenv("SMTP_USER")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}

	dialer := gomail.NewDialer(host, port, user, os.Getenv("SMTP_PASSWORD"))
	dialer.SSL = port == 465

	tmpl := template.Must(template.New("order").Funcs(template.FuncMap{
		"formatAED": utils.FormatAED,
	}).Parse(orderMailTemplate))

	log.Printf("✅ Mail service configured: %s:%d", host, port)
	return &MailService{
		dialer: dialer,
		from:   from,
		to:     os.Getenv("ORDER_NOTIFY_TO"),
		tmpl:   tmpl,
	}
}

// Enabled reports whether the service can actually send mail.
func (s *MailService) Enabled() bool {
	return s.dialer != nil && s.to != ""
}

// SendOrderNotification emails the order snapshot to the shop owner.
func (s *MailService) SendOrderNotification(order *models.Order) error {
	if !s.Enabled() {
		return nil
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, struct{ Order *models.Order }{order}); err != nil {
		return fmt.Errorf("rendering order email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.to)
	msg.SetHeader("Subject", fmt.Sprintf("New order from %s (%s)", order.CustomerName, utils.FormatAED(order.Total)))
	msg.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending order email: %w", err)
	}
	log.Printf("📧 Order notification sent for %s", order.CustomerName)
	return nil
}
