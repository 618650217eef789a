// Package importer orchestrates a single import pass from the Octopus
// Energy API into InfluxDB.
//
// One run walks the account topology and writes every fetched record as a
// time-series point:
//
//	Authenticate ──▶ Account
//	                    │
//	                    ▼  for each property
//	       ┌──────────────────────────────────────────┐
//	       │ electricity meter points                 │
//	       │   latest agreement ──▶ tariff code slot  │
//	       │   meters ──▶ consumption page ──▶ batch  │
//	       │ gas meter points                         │
//	       │   meters ──▶ consumption page ──▶ batch  │
//	       │ tariff code ──▶ product code             │
//	       │   standard unit rates page ──▶ batch     │
//	       └──────────────────────────────────────────┘
//
// # Key Types
//
//   - Importer: The orchestrator; Run executes one pass and returns
//   - EnergyClient: Provider surface consumed by the importer (octopus.Client)
//   - PointWriter: Sink surface consumed by the importer (influxdb.Client)
//   - Config: Credentials, account and page sizes for the run
//
// # Behavior
//
// Each meter yields one page of consumption readings and each property one
// page of standard unit rates, written as one batch per fetched collection.
// Pages are never followed past the first; the fetched/total counts are
// logged so truncation is visible. The first error aborts the run: no
// retries, no partial-success accounting.
//
// # Thread Safety
//
// An Importer runs on the caller's goroutine and holds no shared state.
// Run is not safe for concurrent invocation on the same Importer.
//
// # Usage
//
//	imp := importer.New(api, sink, log, importer.Config{
//	    Email:                cfg.Octopus.Email,
//	    Password:             cfg.Octopus.Password,
//	    AccountID:            cfg.Octopus.AccountID,
//	    NumReadings:          cfg.Import.NumReadings,
//	    UnitRatesNumReadings: cfg.Import.UnitRatesNumReadings,
//	})
//
//	if err := imp.Run(ctx); err != nil {
//	    return err
//	}
package importer
