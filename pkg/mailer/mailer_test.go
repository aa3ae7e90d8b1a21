package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fineasy/pkg/finance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNotConfigured(t *testing.T) {
	err := New("", "").Send(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))

		var m Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, []string{"ana@example.com"}, m.To)
		assert.Contains(t, m.HTML, "Relatório")
		fmt.Fprint(w, `{"id":"abc"}`)
	}))
	defer srv.Close()

	err := New("key-123", srv.URL).Send(context.Background(), Message{
		From:    "Fineasy <onboarding@resend.dev>",
		To:      []string{"ana@example.com"},
		Subject: "Relatório Financeiro",
		HTML:    "<h1>Relatório</h1>",
	})
	require.NoError(t, err)
}

func TestSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"invalid from address"}`)
	}))
	defer srv.Close()

	err := New("key-123", srv.URL).Send(context.Background(), Message{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestReportHTML(t *testing.T) {
	r := &finance.MonthlyReport{
		MonthLabel: "janeiro de 2025",
		Income:     4000,
		Expense:    1300,
		Balance:    2700,
		Categories: []finance.CategoryRow{{Name: "Moradia", Amount: 900, Percent: 69.2}},
		Count:      4,
		Tip:        "Parabéns! Você conseguiu economizar este mês. Continue assim!",
	}

	html, err := ReportHTML(r, "Ana")
	require.NoError(t, err)
	assert.Contains(t, html, "Olá Ana!")
	assert.Contains(t, html, "Relatório Financeiro - janeiro de 2025")
	assert.Contains(t, html, "R$ 4000.00")
	assert.Contains(t, html, "Moradia")
	assert.Contains(t, html, "69.2%")
	assert.Contains(t, html, "#10b981")
}

func TestReportHTMLNegativeBalance(t *testing.T) {
	r := &finance.MonthlyReport{MonthLabel: "janeiro de 2025", Balance: -10}
	html, err := ReportHTML(r, "Ana")
	require.NoError(t, err)
	assert.Contains(t, html, "#ef4444")
}
