// Package registrar holds the vendor-neutral pieces shared by the Name.com
// and Porkbun clients: the error model and the pagination aggregator.
//
// # Errors
//
// Every call fails with one of three kinds of error, distinguishable with
// errors.As or the Is* helpers:
//
//   - *TransportError: the HTTP exchange itself failed (network, TLS, DNS,
//     cancellation) or returned a status the vendor never uses for API
//     errors.
//   - *DecodeError: the response did not match the expected shape.
//   - *APIError: the registrar rejected the request. Message holds the
//     vendor's own wording.
//
// Nothing is retried unless a client is configured with RetryMax.
//
// # Pagination
//
// FetchAll drives a PageFetcher until the listing is exhausted, following one
// of two Continuation conventions:
//
//   - NextPageNumber: pages start at 1 and each response names the next
//     page; a missing next page ends the sweep.
//   - OffsetByCount: the cursor starts at 0 and advances by the number of
//     items received; an empty batch ends the sweep.
//
// A sweep is sequential and all-or-nothing: a failed or canceled fetch fails
// the whole call and no partial list is returned.
//
//	domains, err := registrar.FetchAll(ctx, registrar.NextPageNumber{}, fetchPage, nil)
package registrar
