package octopus

import (
	"context"
	"fmt"
	"time"
)

// Account is the topology root: an account number and the properties it
// covers.
type Account struct {
	Number     string     `json:"number"`
	Properties []Property `json:"properties"`
}

// Property groups the meter points at a single address.
type Property struct {
	ID                     int                     `json:"id"`
	AddressLine1           string                  `json:"address_line_1"`
	Postcode               string                  `json:"postcode"`
	ElectricityMeterPoints []ElectricityMeterPoint `json:"electricity_meter_points"`
	GasMeterPoints         []GasMeterPoint         `json:"gas_meter_points"`
}

// ElectricityMeterPoint carries an MPAN, its meters and its agreement
// history. Agreements are ordered chronologically, so the last one is the
// current tariff.
type ElectricityMeterPoint struct {
	MPAN       string      `json:"mpan"`
	Meters     []Meter     `json:"meters"`
	Agreements []Agreement `json:"agreements"`
	IsExport   bool        `json:"is_export"`
}

// GasMeterPoint carries an MPRN, its meters and its agreement history.
type GasMeterPoint struct {
	MPRN       string      `json:"mprn"`
	Meters     []Meter     `json:"meters"`
	Agreements []Agreement `json:"agreements"`
}

// Meter identifies a physical meter by serial number.
type Meter struct {
	SerialNumber string `json:"serial_number"`
}

// Agreement is a tariff contract window. ValidTo is nil while the
// agreement is current.
type Agreement struct {
	TariffCode string     `json:"tariff_code"`
	ValidFrom  time.Time  `json:"valid_from"`
	ValidTo    *time.Time `json:"valid_to"`
}

// Account fetches the full topology for an account: properties, their
// electricity and gas meter points, meters and agreements.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - token: Token from Authenticate
//   - accountID: Account number, e.g. "A-12AB34CD"
//
// Returns:
//   - *Account: Decoded topology
//   - error: Wrapping ErrRequestFailed on any failure
func (c *Client) Account(ctx context.Context, token AuthToken, accountID string) (*Account, error) {
	path := fmt.Sprintf("/v1/accounts/%s/", accountID)

	var account Account
	if err := c.get(ctx, token, path, nil, &account); err != nil {
		return nil, err
	}

	return &account, nil
}
