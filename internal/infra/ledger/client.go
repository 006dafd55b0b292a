package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransport covers network failures, timeouts, non-2xx responses and
	// API-level refusals. The caller is expected to retry on its next tick.
	ErrTransport = errs.New("ledger transport failure")
	// ErrDecode means the response body was not the expected JSON envelope.
	ErrDecode = errs.New("ledger response decode failure")
)

const (
	apiKeyHeader    = "X-API-Key"
	maxResponseSize = 4 << 20
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// HTTPClient overrides the default client; its Timeout is left untouched.
	HTTPClient *http.Client
}

// Client reads recent inbound transfers from a toncenter v2 compatible API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ledger: base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("ledger: invalid base URL %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

type getTransactionsResponse struct {
	OK     bool              `json:"ok"`
	Result []json.RawMessage `json:"result"`
	Error  string            `json:"error"`
}

type rawTransaction struct {
	TransactionID struct {
		Hash string `json:"hash"`
	} `json:"transaction_id"`
	InMsg *rawMessage `json:"in_msg"`
}

type rawMessage struct {
	Destination json.RawMessage `json:"destination"`
	Message     json.RawMessage `json:"message"`
	Value       json.RawMessage `json:"value"`
}

// FetchRecent returns at most limit of the most recent transactions touching
// destination, in feed order. An empty slice is a valid result.
func (c *Client) FetchRecent(ctx context.Context, destination string, limit int) ([]payment.Transaction, error) {
	query := url.Values{}
	query.Set("address", destination)
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/getTransactions", query)
	if err != nil {
		return nil, err
	}

	var envelope getTransactionsResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode getTransactions"), ErrDecode)
	}
	if !envelope.OK && envelope.Error != "" {
		return nil, errs.Mark(errs.Newf("getTransactions refused: %s", envelope.Error), ErrTransport)
	}

	txs := make([]payment.Transaction, 0, min(len(envelope.Result), max(limit, 0)))
	for i, raw := range envelope.Result {
		if len(txs) >= limit {
			break
		}
		tx, ok := parseTransaction(raw)
		if !ok {
			slog.Debug("skipping malformed ledger transaction", "index", i)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path + "?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create ledger request"), ErrTransport)
	}
	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set(apiKeyHeader, c.apiKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "GET %s", path), ErrTransport)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "read %s response", path), ErrTransport)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, errs.Mark(
			errs.Newf("unexpected %d response from GET %s: %s", response.StatusCode, path, snippet(body)),
			ErrTransport,
		)
	}
	return body, nil
}

// parseTransaction never fails on individual fields: a missing or malformed
// field becomes its zero value, which cannot satisfy any order. ok is false
// only when the record is not a JSON object at all.
func parseTransaction(raw json.RawMessage) (payment.Transaction, bool) {
	var rt rawTransaction
	if err := json.Unmarshal(raw, &rt); err != nil {
		return payment.Transaction{}, false
	}

	tx := payment.Transaction{
		Hash:  rt.TransactionID.Hash,
		Value: decimal.Zero,
	}
	if rt.InMsg == nil {
		return tx, true
	}
	tx.Destination = stringField(rt.InMsg.Destination)
	tx.Comment = stringField(rt.InMsg.Message)
	tx.Value = nanoField(rt.InMsg.Value)
	return tx, true
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// nanoField accepts the integer base-unit amount as a JSON string or number
// and returns it in TON.
func nanoField(raw json.RawMessage) decimal.Decimal {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return decimal.Zero
	}
	if s := stringField(raw); s != "" {
		text = strings.TrimSpace(s)
	}

	nano, err := strconv.ParseInt(text, 10, 64)
	if err != nil || nano < 0 {
		return decimal.Zero
	}
	return payment.TONFromNano(nano)
}

func snippet(body []byte) string {
	const n = 200
	body = bytes.TrimSpace(body)
	if len(body) > n {
		return string(body[:n]) + "..."
	}
	return string(body)
}
