package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Tazeen604/ZerZabar-sub002/models"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client. Returns nil when no API key
// is configured; callers treat that as email disabled.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("[resend] RESEND_API_KEY not set, invoice email disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@zerzabar.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from}
}

// SendOrderInvoice emails the customer an invoice summary with the PDF
// attached.
func (r *ResendClient) SendOrderInvoice(order *models.Order, pdfContent []byte) error {
	if order.Customer.Email == "" {
		return fmt.Errorf("order %s has no customer email", order.OrderNumber)
	}

	var itemsRows strings.Builder
	for _, item := range order.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Price*float64(item.Quantity)))
	}

	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 16px; font-family: -apple-system, 'Segoe UI', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
      <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">INVOICE</h1>
      <p style="margin: 4px 0; font-size: 14px; color: #79776d;">Order %s · %s</p>
    </td></tr>
    <tr><td style="padding: 16px 0;">
      <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">Bill To</p>
      <p style="margin: 4px 0; font-size: 14px; color: #262622;">%s</p>
      <p style="margin: 4px 0; font-size: 14px; color: #79776d;">%s</p>
    </td></tr>
    <tr><td>
      <table width="100%%" cellpadding="0" cellspacing="0" border="0">%s</table>
    </td></tr>
    <tr><td style="border-top: 1px solid #e5e5e0; padding-top: 12px;">
      <p style="margin: 2px 0; font-size: 14px; color: #79776d;">Subtotal: $%.2f</p>
      <p style="margin: 2px 0; font-size: 14px; color: #79776d;">Shipping: $%.2f</p>
      <p style="margin: 2px 0; font-size: 16px; font-weight: bold; color: #262622;">Total: $%.2f</p>
    </td></tr>
  </table>
</body>
</html>`,
		order.OrderNumber,
		order.CreatedAt.Format("Jan 02, 2006"),
		order.Customer.Name,
		order.Customer.Email,
		itemsRows.String(),
		order.Subtotal,
		order.ShippingCost,
		order.TotalAmount,
	))

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      order.Customer.Email,
		"subject": fmt.Sprintf("Your invoice for order %s", order.OrderNumber),
		"html":    html.String(),
		"attachments": []map[string]string{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", order.OrderNumber),
				"content":  base64.StdEncoding.EncodeToString(pdfContent),
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] send failed status=%d body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	log.Printf("[resend] invoice email sent for order %s", order.OrderNumber)
	return nil
}
