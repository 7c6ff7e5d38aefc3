// Package registrarclient provides the primary entry point for constructing
// clients for the Name.com Core v1 and Porkbun v3 registrar APIs.
//
// It layers configuration defaults, HTTP transport and authentication on top
// of the interfaces and types defined in the namecom and porkbun packages.
// Most applications import registrarclient to build a client and then use
// the returned interface to reach the per-group clients, for example
// Domains(), DNS() or DNSSEC().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/registrar-client/pkg/namecom"
//	  "github.com/fivetwenty-io/registrar-client/pkg/registrarclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  nc, err := registrarclient.NewNameCom(&namecom.Config{
//	    Username: "user",
//	    Token:    "0123456789abcdef",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Every page is fetched before List returns.
//	  domains, err := nc.Domains().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = domains
//
//	  pb, err := registrarclient.NewPorkbunWithKeys("pk1_...", "sk1_...")
//	  if err != nil { log.Fatal(err) }
//
//	  records, err := pb.DNS().Retrieve(ctx, "example.com")
//	  if err != nil { log.Fatal(err) }
//	  _ = records
//	}
//
// # Errors
//
// Every operation returns one of three error kinds from the registrar
// package: TransportError when the exchange itself failed, DecodeError when
// the body did not have the expected shape, and APIError when the registrar
// rejected the request. Use errors.As or the registrar.Is* helpers.
//
// # Retries
//
// Requests are sent once. Set RetryMax on the vendor Config to retry
// connection errors, 429 and 5xx responses with exponential backoff.
package registrarclient
