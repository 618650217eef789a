package importer

import (
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/octoflux/internal/octopus"
)

// Measurement names for the imported collections.
const (
	measurementConsumption = "consumption"
	measurementRates       = "rates"
)

// consumptionPoint maps one metered interval to a point timestamped at the
// interval start. The meter identity goes into tags so readings from
// different meters stay distinct series.
func consumptionPoint(measurement string, meterType octopus.MeterType, mpxn, serial string, rec octopus.ConsumptionRecord) *write.Point {
	return write.NewPoint(
		measurement,
		map[string]string{
			"meter_type": string(meterType),
			"mpxn":       mpxn,
			"serial":     serial,
		},
		map[string]interface{}{
			"consumption": rec.Consumption,
		},
		rec.IntervalStart,
	)
}

// ratePoint maps one unit rate window to a point timestamped at the start
// of the window. The VAT-inclusive value is the stored rate.
func ratePoint(measurement, productCode, tariffCode string, rec octopus.RateRecord) *write.Point {
	return write.NewPoint(
		measurement,
		map[string]string{
			"product_code": productCode,
			"tariff_code":  tariffCode,
		},
		map[string]interface{}{
			"rate": rec.ValueIncVAT,
		},
		rec.ValidFrom,
	)
}
