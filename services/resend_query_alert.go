package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/Nautica-Marine/nautica-store-backend/models"
)

// ResendClient handles email sending via the Resend API
type ResendClient struct {
	apiKey string
	from   string
	to     string
}

// NewResendClient creates a new Resend client. Returns nil when no API key
// is configured; callers treat that as "alerts disabled".
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@nautica-marine.shop"
	}
	to := os.Getenv("QUERY_ALERT_EMAIL")
	if to == "" {
		to = "sales@nautica-marine.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from, to: to}
}

// SendQueryAlertEmail notifies the shop about a new contact/rental query.
func (r *ResendClient) SendQueryAlertEmail(query *models.Query) error {
	phone := "Not provided"
	if query.Phone != nil {
		phone = *query.Phone
	}

	htmlBody := fmt.Sprintf(`
		<h2>New customer query</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<hr>
		<pre>%s</pre>
	`, query.Name, query.Email, phone, query.Message)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      r.to,
		"subject": fmt.Sprintf("New query from %s", query.Name),
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
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

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] query alert failed status=%d body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}
	return nil
}
