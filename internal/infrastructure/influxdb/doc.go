// Package influxdb provides InfluxDB connectivity for Octoflux.
//
// It wraps the official influxdb-client-go v2 library with Octoflux-specific
// patterns for connection management, batch writing, and health monitoring.
//
// # Purpose
//
// This package handles time-series data storage for:
//   - Half-hourly consumption readings (electricity and gas)
//   - Tariff standard unit rates
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "home",
//	    Bucket: "energy",
//	}
//
//	client, err := influxdb.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Write a batch of points
//	if err := client.WritePoints(ctx, points...); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
//
// # Error Handling
//
// Writes are synchronous: the whole batch is sent in one request and a
// rejection comes back as an error from WritePoints. Connection and health
// check errors are returned directly. All errors wrap package sentinels
// (ErrNotConnected, ErrConnectionFailed, ErrWriteFailed) for errors.Is checks.
package influxdb
