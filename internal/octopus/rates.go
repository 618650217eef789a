package octopus

import (
	"context"
	"fmt"
	"time"
)

// RateRecord is a unit rate valid over a time window. ValidTo is nil for
// the currently open window.
type RateRecord struct {
	ValueExcVAT float64    `json:"value_exc_vat"`
	ValueIncVAT float64    `json:"value_inc_vat"`
	ValidFrom   time.Time  `json:"valid_from"`
	ValidTo     *time.Time `json:"valid_to"`
}

// RatePage is one page of standard unit rates. Count is the total number
// of records across all pages.
type RatePage struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []RateRecord `json:"results"`
}

// StandardUnitRates fetches one page of standard unit rates for a tariff.
//
// The product code is the tariff's product as extracted by ProductCode.
// An empty product or tariff code produces a URL the API rejects, which
// surfaces as ErrRequestFailed.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - token: Token from Authenticate
//   - meterType: Electricity or Gas (selects the tariff endpoint)
//   - productCode: Product the tariff belongs to, e.g. "AGILE-FLEX-22-11-25"
//   - tariffCode: Full tariff code, e.g. "E-1R-AGILE-FLEX-22-11-25-B"
//   - page: Page number; only sent when positive, the API then defaults
//     to the first page
//   - pageSize: Number of records to request
//
// Returns:
//   - *RatePage: One page of rates, newest first
//   - error: Wrapping ErrRequestFailed on any failure
func (c *Client) StandardUnitRates(ctx context.Context, token AuthToken, meterType MeterType, productCode, tariffCode string, page, pageSize int) (*RatePage, error) {
	path := fmt.Sprintf("/v1/products/%s/%s-tariffs/%s/standard-unit-rates/", productCode, meterType.fuel(), tariffCode)

	var result RatePage
	if err := c.get(ctx, token, path, pageParams(page, pageSize, GroupNone), &result); err != nil {
		return nil, err
	}

	return &result, nil
}
