// Package octopus provides a client for the Octopus Energy API.
//
// # Purpose
//
// This package handles the provider side of an import run:
//   - Credential exchange for a Kraken API token (GraphQL)
//   - Account topology retrieval: properties, meter points, meters (REST)
//   - Paged consumption readings and standard unit rates (REST)
//   - Product code extraction from tariff codes
//
// # Usage
//
//	client := octopus.New(cfg.Octopus)
//
//	token, err := client.Authenticate(ctx, cfg.Octopus.Email, cfg.Octopus.Password)
//	if err != nil {
//	    return err
//	}
//
//	account, err := client.Account(ctx, token, cfg.Octopus.AccountID)
//	if err != nil {
//	    return err
//	}
//
// # Authentication
//
// Authenticate posts the obtainKrakenToken GraphQL mutation and returns a
// JWT. REST endpoints expect the raw token as the Authorization header
// value, without a Bearer prefix.
//
// # Pagination
//
// List endpoints return one page per call together with the total record
// count. Callers choose the page size; the Next link is never followed.
//
// # Error Handling
//
// All errors wrap the package sentinels ErrAuthFailed or ErrRequestFailed
// for errors.Is checks.
//
// # Thread Safety
//
// The client holds no mutable state; all methods are safe for concurrent
// use from multiple goroutines.
package octopus
