//go:build unit

package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"premium-reconciler/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dest = "EQTestDestination"

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/", APIKey: apiKey, Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestFetchRecent_ParsesFeed(t *testing.T) {
	body := `{"ok":true,"result":[
		{"transaction_id":{"hash":"h1"},"in_msg":{"destination":"EQTestDestination","message":" BHEK-7-AB12 ","value":"1000000000"}},
		{"transaction_id":{"hash":"h2"},"in_msg":{"destination":"EQTestDestination","message":"BHEK-8-CD34","value":2500000000}},
		{"transaction_id":{"hash":"h3"},"in_msg":{"destination":"EQTestDestination","message":null,"value":"abc"}},
		{"transaction_id":{"hash":"h4"}},
		"not an object"
	]}`

	var gotPath, gotKey, gotAddress, gotLimit string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotAddress = r.URL.Query().Get("address")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}, "secret-key")

	txs, err := c.FetchRecent(context.Background(), dest, 40)
	require.NoError(t, err)

	assert.Equal(t, "/getTransactions", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, dest, gotAddress)
	assert.Equal(t, "40", gotLimit)

	require.Len(t, txs, 4)
	assert.Equal(t, "h1", txs[0].Hash)
	assert.Equal(t, " BHEK-7-AB12 ", txs[0].Comment)
	assert.True(t, txs[0].Value.Equal(decimal.NewFromInt(1)))
	assert.True(t, txs[1].Value.Equal(decimal.RequireFromString("2.5")))
	assert.Empty(t, txs[2].Comment)
	assert.True(t, txs[2].Value.IsZero())
	assert.Empty(t, txs[3].Destination)
	assert.True(t, txs[3].Value.IsZero())
}

func TestFetchRecent_RespectsLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":[{"in_msg":{}},{"in_msg":{}},{"in_msg":{}}]}`))
	}, "")

	txs, err := c.FetchRecent(context.Background(), dest, 2)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestFetchRecent_EmptyIsNotAnError(t *testing.T) {
	var sawKey bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawKey = r.Header["X-Api-Key"]
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	}, "")

	txs, err := c.FetchRecent(context.Background(), dest, 40)
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.False(t, sawKey)
}

func TestFetchRecent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusBadGateway, body: "bad gateway", wantErr: ErrTransport},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"ok":false,"error":"Ratelimit exceed"}`, wantErr: ErrTransport},
		{name: "api refusal", status: http.StatusOK, body: `{"ok":false,"error":"invalid address"}`, wantErr: ErrTransport},
		{name: "not json", status: http.StatusOK, body: "<html>", wantErr: ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			txs, err := c.FetchRecent(context.Background(), dest, 40)
			assert.Nil(t, txs)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestFetchRecent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.FetchRecent(context.Background(), dest, 40)
	assert.True(t, errs.Is(err, ErrTransport))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestNanoField(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"1000000000"`, want: "1"},
		{raw: `999999000`, want: "0.999999"},
		{raw: `" 5 "`, want: "0.000000005"},
		{raw: `"-1"`, want: "0"},
		{raw: `1.5`, want: "0"},
		{raw: `null`, want: "0"},
		{raw: ``, want: "0"},
		{raw: `{"x":1}`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := nanoField([]byte(tt.raw))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
