package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/shared"
)

const (
	SignatureHeader = "X-Signature-256"
	userAgent       = "premium-reconciler-webhook/1.0"
)

// Message is the JSON body delivered to the messaging front end.
type Message struct {
	JobID     string          `json:"job_id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Recipient int64           `json:"recipient"`
	Payload   json.RawMessage `json:"payload"`
}

// WebhookSink posts notification jobs to the front end, which relays them to
// the recipient chat.
type WebhookSink struct {
	url    string
	secret []byte
	client *http.Client
}

func NewWebhookSink(url, secret string, timeout time.Duration) *WebhookSink {
	return &WebhookSink{
		url:    url,
		secret: []byte(secret),
		client: &http.Client{Timeout: timeout},
	}
}

func (s *WebhookSink) Send(ctx context.Context, job shared.NotificationJob) error {
	body, err := json.Marshal(Message{
		JobID:     job.ID.String(),
		Kind:      job.Kind,
		Topic:     job.Topic,
		Recipient: job.Recipient.Int64(),
		Payload:   job.Payload,
	})
	if err != nil {
		return errs.Wrap(err, "encode webhook body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if len(s.secret) > 0 {
		req.Header.Set(SignatureHeader, "sha256="+Sign(s.secret, body))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "deliver webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return errs.Newf("front end returned %d", resp.StatusCode)
}

// Sign returns the hex HMAC-SHA256 of body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// LogSink only logs. Used when no webhook URL is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Send(_ context.Context, job shared.NotificationJob) error {
	s.logger.Info("notification (no webhook configured)",
		slog.String("job_id", job.ID.String()),
		slog.String("kind", job.Kind),
		slog.Int64("recipient", job.Recipient.Int64()),
	)
	return nil
}
