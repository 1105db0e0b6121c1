// Package feed fetches the product transaction dataset from the remote JSON
// endpoint.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/UmangSachdeva/SalesReport/models"
)

var ErrUnexpectedStatus = errors.New("unexpected feed status")

// Layouts accepted for dateOfSale, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

type Client struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient returns a client for the feed at url. A zero timeout leaves the
// request bounded only by the caller's context.
func NewClient(url string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// record is the wire shape of one feed entry.
type record struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Sold        bool            `json:"sold"`
	DateOfSale  json.RawMessage `json:"dateOfSale"`
}

// FetchTransactions downloads the whole feed. Any failure is logged and
// yields an empty slice; it never returns nil.
func (c *Client) FetchTransactions(ctx context.Context) []models.Transaction {
	transactions, err := c.fetch(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("url", c.url).Msg("Error fetching feed")
		return []models.Transaction{}
	}
	c.log.Debug().Int("records", len(transactions)).Msg("Feed fetched")
	return transactions
}

// FindAll lets the feed stand in for the store as a report source.
func (c *Client) FindAll(ctx context.Context) ([]models.Transaction, error) {
	return c.FetchTransactions(ctx), nil
}

func (c *Client) fetch(ctx context.Context) ([]models.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, models.Transaction{
			ID:          r.ID,
			Title:       r.Title,
			Price:       r.Price,
			Description: r.Description,
			Category:    r.Category,
			Image:       r.Image,
			Sold:        r.Sold,
			DateOfSale:  c.parseDate(r.ID, r.DateOfSale),
		})
	}
	return transactions, nil
}

// parseDate keeps the offset written in the feed so the calendar month is
// the one in the text. Missing, non-string and unparseable dates become nil.
func (c *Client) parseDate(id int64, raw json.RawMessage) *time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		c.log.Warn().Int64("id", id).Msg("Transaction has no dateOfSale")
		return nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		c.log.Warn().Int64("id", id).RawJSON("dateOfSale", raw).Msg("Malformed dateOfSale")
		return nil
	}
	if value == "" {
		c.log.Warn().Int64("id", id).Msg("Transaction has no dateOfSale")
		return nil
	}
	d, err := ParseSaleDate(value)
	if err != nil {
		c.log.Warn().Err(err).Int64("id", id).Str("dateOfSale", value).Msg("Malformed dateOfSale")
		return nil
	}
	return &d
}

// ParseSaleDate parses an ISO-8601 timestamp or plain date.
func ParseSaleDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
