package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shashiranjanraj/vastra/app/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>Thank you for your order, {{.Shipping.Name}}!</h2>
<p>We have received your order and it is being processed.</p>
<table cellpadding="6" border="1" style="border-collapse:collapse">
  <tr><th>Item</th><th>Qty</th><th>Price</th></tr>
  {{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>&#8377;{{printf "%.2f" .Price}}</td></tr>
  {{end}}
</table>
<p><strong>Total: &#8377;{{printf "%.2f" .Total}}</strong></p>
<p>Payment method: {{.PaymentMethod}}</p>
<p>Delivery to: {{.Shipping.Address}}, {{.Shipping.City}}{{if .Shipping.State}}, {{.Shipping.State}}{{end}} {{.Shipping.PostalCode}}</p>
`))

// renderConfirmation builds the HTML confirmation-email body for an order.
func renderConfirmation(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, order); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}
