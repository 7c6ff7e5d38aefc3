// Package porkbun describes the Porkbun v3 JSON API: its resource types and
// the client interfaces for each capability group.
//
// Every request is a POST whose JSON body carries the API key pair next to
// the operation's own fields. Every response is wrapped in a
// {"status": "SUCCESS"|"ERROR"} envelope; an ERROR envelope surfaces as a
// *registrar.APIError. Operations that the API acknowledges with a bare
// status return only an error.
package porkbun

import (
	"context"
	"errors"
	"net/netip"
	"time"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// BaseURL is the v3 API root.
const BaseURL = constants.PorkbunBaseURL

// Static errors for err113 compliance.
var (
	ErrMalformedGlue = errors.New("malformed glue record")
)

// PublicClient is the part of the API that needs no credentials.
type PublicClient interface {
	// Pricing returns registration prices keyed by TLD.
	Pricing(ctx context.Context) (map[string]TLDPricing, error)
}

// Client is the Porkbun API.
type Client interface {
	PublicClient

	// Ping checks the credentials and reports the caller's public IP.
	Ping(ctx context.Context) (*Ping, error)

	Domains() DomainsClient
	DNS() DNSClient
	DNSSEC() DNSSECClient
	SSL() SSLClient
}

// DomainsClient manages domains, their nameservers, URL forwards and glue
// records.
type DomainsClient interface {
	// ListAll returns every domain of the account across all batches.
	ListAll(ctx context.Context, options *ListOptions) ([]DomainInfo, error)
	// StreamAll delivers the domain listing batch by batch.
	StreamAll(ctx context.Context, options *ListOptions) <-chan registrar.PageResult[DomainInfo]
	GetNameservers(ctx context.Context, domain string) ([]string, error)
	UpdateNameservers(ctx context.Context, domain string, nameservers []string) error
	AddURLForward(ctx context.Context, domain string, request *URLForwardRequest) error
	GetURLForwarding(ctx context.Context, domain string) ([]URLForward, error)
	DeleteURLForward(ctx context.Context, domain string, id int64) error
	Check(ctx context.Context, domain string) (*DomainCheck, error)
	CreateGlue(ctx context.Context, domain, subdomain string, ips []netip.Addr) error
	UpdateGlue(ctx context.Context, domain, subdomain string, ips []netip.Addr) error
	DeleteGlue(ctx context.Context, domain, subdomain string) error
	GetGlue(ctx context.Context, domain string) ([]GlueRecord, error)
}

// DNSClient manages the resource records of a domain. Record types are
// given as on the wire ("A", "MX", ...); an empty subdomain addresses the
// apex.
type DNSClient interface {
	// Create adds a record and returns its id.
	Create(ctx context.Context, domain string, request *DNSRecordCreateRequest) (int64, error)
	Edit(ctx context.Context, domain string, id int64, request *DNSRecordEditRequest) error
	EditByNameType(ctx context.Context, domain, recordType, subdomain string, request *DNSRecordNameTypeEditRequest) error
	Delete(ctx context.Context, domain string, id int64) error
	DeleteByNameType(ctx context.Context, domain, recordType, subdomain string) error
	Retrieve(ctx context.Context, domain string) ([]DNSRecord, error)
	// RetrieveByID fails with registrar.ErrRecordNotFound when no record
	// has that id.
	RetrieveByID(ctx context.Context, domain string, id int64) (*DNSRecord, error)
	RetrieveByNameType(ctx context.Context, domain, recordType, subdomain string) ([]DNSRecord, error)
}

// DNSSECClient manages DS records, addressed by key tag.
type DNSSECClient interface {
	Create(ctx context.Context, domain string, record *DNSSECRecord) error
	// List returns the records keyed by key tag.
	List(ctx context.Context, domain string) (map[string]DNSSECRecord, error)
	Delete(ctx context.Context, domain, keyTag string) error
}

// SSLClient retrieves the free certificate of a domain.
type SSLClient interface {
	Retrieve(ctx context.Context, domain string) (*SSLBundle, error)
}

// Config holds configuration for a Porkbun client.
type Config struct {
	// APIKey and SecretAPIKey are merged into every request body.
	APIKey       string
	SecretAPIKey string

	// BaseURL is the API root. Empty means BaseURL.
	BaseURL string

	// HTTPTimeout bounds each HTTP attempt. Empty means 30s.
	HTTPTimeout time.Duration
	// MaxPages bounds every list sweep. Zero means a generous default.
	MaxPages int

	// RetryMax enables retries of connection errors, 429 and 5xx responses.
	// Zero sends each request exactly once.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	Debug     bool
	Logger    registrar.Logger
	UserAgent string
}
