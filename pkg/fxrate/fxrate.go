// Package fxrate converts foreign-currency amounts to BRL using the
// exchangerate.host conversion API and serves current USD/EUR quotes.
package fxrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnavailable means the rate provider answered but could not convert.
var ErrUnavailable = errors.New("cotação indisponível")

// Rates are the current BRL quotes for the supported currencies.
type Rates struct {
	USD float64 `json:"USD"`
	EUR float64 `json:"EUR"`
}

// Client talks to an exchangerate.host-compatible endpoint. The zero value
// is not usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client against the given base URL (empty means the public
// endpoint).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.exchangerate.host"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type convertResponse struct {
	Success bool    `json:"success"`
	Result  float64 `json:"result"`
}

// Convert returns amount expressed in BRL. A BRL input comes back unchanged
// without a network call.
func (c *Client) Convert(ctx context.Context, from string, amount float64) (float64, error) {
	if from == "" || from == "BRL" {
		return amount, nil
	}

	q := url.Values{}
	q.Set("from", from)
	q.Set("to", "BRL")
	q.Set("amount", fmt.Sprintf("%g", amount))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/convert?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("conversão de moeda: status %d", resp.StatusCode)
	}

	var body convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if !body.Success {
		return 0, ErrUnavailable
	}
	return body.Result, nil
}

type latestResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

// Latest returns the current USD and EUR quotes in BRL.
func (c *Client) Latest(ctx context.Context) (*Rates, error) {
	out := &Rates{}
	for _, cur := range []struct {
		code string
		dst  *float64
	}{{"USD", &out.USD}, {"EUR", &out.EUR}} {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/latest?base="+cur.code+"&symbols=BRL", nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		var body latestResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		rate, ok := body.Rates["BRL"]
		if !ok {
			return nil, ErrUnavailable
		}
		*cur.dst = rate
	}
	return out, nil
}
