package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"weekly-meal-planner/internal/config"
)

// ErrNoOffer is returned when the catalog has no usable offer for an item:
// empty result arrays, missing price, or any other shape deviation.
var ErrNoOffer = errors.New("no offer data")

// Offer is the usable part of a catalog search result.
type Offer struct {
	FormattedPrice string
	ImageHTML      string
}

// Client queries the external product catalog for price and image data.
type Client struct {
	http              *resty.Client
	merchantReference string
	currency          string
}

// NewClient builds a catalog client. Every request carries the configured
// timeout so one hanging lookup cannot pin a worker indefinitely.
func NewClient(cfg config.PricingConfig) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:              http,
		merchantReference: cfg.MerchantReference,
		currency:          cfg.Currency,
	}
}

type searchResponse struct {
	Data []struct {
		Attributes struct {
			Results []struct {
				Prices []struct {
					FormattedPrice string `json:"formattedPrice"`
				} `json:"prices"`
				Images []struct {
					ExternalURLLarge string `json:"externalUrlLarge"`
				} `json:"images"`
			} `json:"catalogSearchProductOfferResults"`
		} `json:"attributes"`
	} `json:"data"`
}

// Lookup searches the catalog for one ingredient. The formatted price is
// passed through verbatim. Network errors, non-2xx statuses, malformed
// JSON and empty result arrays all come back as errors for the caller to
// absorb per item.
func (c *Client) Lookup(ctx context.Context, item string) (Offer, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"currency":          c.currency,
			"q":                 item,
			"sort":              "relevance",
			"merchantReference": c.merchantReference,
		}).
		Get("/catalog-search-product-offers")
	if err != nil {
		return Offer{}, fmt.Errorf("catalog request for %q failed: %w", item, err)
	}
	if resp.IsError() {
		return Offer{}, fmt.Errorf("catalog returned status %d for %q", resp.StatusCode(), item)
	}

	var body searchResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return Offer{}, fmt.Errorf("catalog response for %q is not valid JSON: %w", item, err)
	}

	if len(body.Data) == 0 || len(body.Data[0].Attributes.Results) == 0 {
		return Offer{}, fmt.Errorf("%w for %q", ErrNoOffer, item)
	}
	result := body.Data[0].Attributes.Results[0]
	if len(result.Prices) == 0 {
		return Offer{}, fmt.Errorf("%w for %q", ErrNoOffer, item)
	}

	offer := Offer{FormattedPrice: result.Prices[0].FormattedPrice}
	if len(result.Images) > 0 && result.Images[0].ExternalURLLarge != "" {
		offer.ImageHTML = imageTag(result.Images[0].ExternalURLLarge, item)
	}
	return offer, nil
}

// imageTag rewrites the catalog's templated image URL into a fixed-width
// snippet for the email body.
func imageTag(rawURL, item string) string {
	u := strings.TrimSuffix(rawURL, "{slug}")
	u = strings.ReplaceAll(u, "{width}", "116")
	return fmt.Sprintf("<img src=%s alt=%s height='116'>", u, item)
}
