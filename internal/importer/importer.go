package importer

import (
	"context"
	"fmt"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/octoflux/internal/infrastructure/logging"
	"github.com/nerrad567/octoflux/internal/octopus"
)

// EnergyClient is the provider surface the importer consumes.
// Satisfied by *octopus.Client.
type EnergyClient interface {
	Authenticate(ctx context.Context, email, password string) (octopus.AuthToken, error)
	Account(ctx context.Context, token octopus.AuthToken, accountID string) (*octopus.Account, error)
	Consumption(ctx context.Context, token octopus.AuthToken, meterType octopus.MeterType, mpxn, serial string, page, pageSize int, groupBy octopus.Grouping) (*octopus.ConsumptionPage, error)
	StandardUnitRates(ctx context.Context, token octopus.AuthToken, meterType octopus.MeterType, productCode, tariffCode string, page, pageSize int) (*octopus.RatePage, error)
}

// PointWriter is the sink surface the importer consumes.
// Satisfied by *influxdb.Client.
type PointWriter interface {
	WritePoints(ctx context.Context, points ...*write.Point) error
}

// Config carries the run parameters.
type Config struct {
	Email                string
	Password             string
	AccountID            string
	NumReadings          int
	UnitRatesNumReadings int
}

// Importer walks one account's meter topology and writes every fetched
// record to the sink. One pass, strictly sequential, aborted by the first
// error.
type Importer struct {
	api  EnergyClient
	sink PointWriter
	log  *logging.Logger
	cfg  Config
}

// New creates an importer for a single run.
func New(api EnergyClient, sink PointWriter, log *logging.Logger, cfg Config) *Importer {
	return &Importer{
		api:  api,
		sink: sink,
		log:  log,
		cfg:  cfg,
	}
}

// Run executes one import pass: authenticate, fetch the account topology,
// then import consumption for every meter and unit rates for every
// property, in order.
//
// Returns:
//   - error: The first failure, with call-site context; nil after the
//     last property completes
func (i *Importer) Run(ctx context.Context) error {
	token, err := i.api.Authenticate(ctx, i.cfg.Email, i.cfg.Password)
	if err != nil {
		return fmt.Errorf("authenticating: %w", err)
	}
	i.log.Info("authenticated", "account_id", i.cfg.AccountID)

	account, err := i.api.Account(ctx, token, i.cfg.AccountID)
	if err != nil {
		return fmt.Errorf("fetching account %s: %w", i.cfg.AccountID, err)
	}
	i.log.Info("account fetched",
		"account", account.Number,
		"properties", len(account.Properties))

	for _, property := range account.Properties {
		if err := i.importProperty(ctx, token, property); err != nil {
			return err
		}
	}

	return nil
}

// importProperty imports consumption for every meter at the property,
// then one page of unit rates for the property's current tariff.
func (i *Importer) importProperty(ctx context.Context, token octopus.AuthToken, property octopus.Property) error {
	i.log.Info("importing property", "address", property.AddressLine1)

	// The last electricity meter point with agreements decides which
	// tariff the rates import uses.
	var tariffCode string

	for _, mp := range property.ElectricityMeterPoints {
		i.log.Info("electricity meter point", "mpan", mp.MPAN)

		if len(mp.Agreements) > 0 {
			latest := mp.Agreements[len(mp.Agreements)-1]
			i.log.Info("latest agreement",
				"tariff_code", latest.TariffCode,
				"valid_from", latest.ValidFrom)
			tariffCode = latest.TariffCode
		}

		for _, meter := range mp.Meters {
			if err := i.importConsumption(ctx, token, octopus.Electricity, mp.MPAN, meter.SerialNumber); err != nil {
				return err
			}
		}
	}

	for _, mp := range property.GasMeterPoints {
		i.log.Info("gas meter point", "mprn", mp.MPRN)

		for _, meter := range mp.Meters {
			if err := i.importConsumption(ctx, token, octopus.Gas, mp.MPRN, meter.SerialNumber); err != nil {
				return err
			}
		}
	}

	return i.importRates(ctx, token, tariffCode)
}

// importConsumption fetches one page of readings for a meter and writes
// the mapped points as a single batch.
func (i *Importer) importConsumption(ctx context.Context, token octopus.AuthToken, meterType octopus.MeterType, mpxn, serial string) error {
	i.log.Info("importing consumption",
		"meter_type", string(meterType),
		"mpxn", mpxn,
		"serial", serial)

	page, err := i.api.Consumption(ctx, token, meterType, mpxn, serial, 0, i.cfg.NumReadings, octopus.GroupNone)
	if err != nil {
		return fmt.Errorf("fetching consumption for meter %s: %w", serial, err)
	}
	i.log.Info("consumption fetched",
		"meter_type", string(meterType),
		"serial", serial,
		"records", len(page.Results),
		"total", page.Count)

	points := make([]*write.Point, 0, len(page.Results))
	for _, rec := range page.Results {
		points = append(points, consumptionPoint(measurementConsumption, meterType, mpxn, serial, rec))
	}

	if err := i.sink.WritePoints(ctx, points...); err != nil {
		return fmt.Errorf("writing consumption for meter %s: %w", serial, err)
	}
	i.log.Info("consumption written", "serial", serial, "points", len(points))

	return nil
}

// importRates fetches one page of standard unit rates for the tariff and
// writes the mapped points. Runs once per property even when no meter
// point set a tariff code; rates are always the electricity variant.
func (i *Importer) importRates(ctx context.Context, token octopus.AuthToken, tariffCode string) error {
	productCode := octopus.ProductCode(tariffCode)
	i.log.Info("importing rates",
		"tariff_code", tariffCode,
		"product_code", productCode)

	page, err := i.api.StandardUnitRates(ctx, token, octopus.Electricity, productCode, tariffCode, 0, i.cfg.UnitRatesNumReadings)
	if err != nil {
		return fmt.Errorf("fetching unit rates for tariff %q: %w", tariffCode, err)
	}
	i.log.Info("rates fetched",
		"tariff_code", tariffCode,
		"records", len(page.Results),
		"total", page.Count)

	points := make([]*write.Point, 0, len(page.Results))
	for _, rec := range page.Results {
		points = append(points, ratePoint(measurementRates, productCode, tariffCode, rec))
	}

	if err := i.sink.WritePoints(ctx, points...); err != nil {
		return fmt.Errorf("writing unit rates for tariff %q: %w", tariffCode, err)
	}
	i.log.Info("rates written", "tariff_code", tariffCode, "points", len(points))

	return nil
}
