// Package namecom describes the Name.com Core v1 API: its resource types and
// the client interfaces for each capability group.
//
// Create a client with registrarclient.NewNameCom:
//
//	client, err := registrarclient.NewNameCom(&namecom.Config{
//		Username: "alice",
//		Token:    os.Getenv("NAMECOM_TOKEN"),
//		Host:     namecom.DevelopmentHost,
//	})
//	if err != nil {
//		return err
//	}
//
//	domains, err := client.Domains().List(ctx)
//
// Errors are those of package registrar. A rejected request is a
// *registrar.APIError carrying the HTTP status and the server's message.
package namecom

import (
	"context"
	"time"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// Hosts of the two Name.com environments.
const (
	ProductionHost  = constants.NameComProductionHost
	DevelopmentHost = constants.NameComDevelopmentHost
)

// Client is the Name.com API.
type Client interface {
	// Hello checks connectivity and credentials.
	Hello(ctx context.Context) (*Hello, error)

	Domains() DomainsClient
	DNS() DNSClient
	DNSSEC() DNSSECClient
	URLForwarding() URLForwardingClient
	VanityNameservers() VanityNameserversClient
}

// DomainsClient manages the domains of the account.
type DomainsClient interface {
	// List returns every domain of the account across all pages.
	List(ctx context.Context) ([]Domain, error)
	// Stream delivers the domain listing page by page.
	Stream(ctx context.Context) <-chan registrar.PageResult[Domain]
	CheckAvailability(ctx context.Context, domainNames []string) ([]AvailabilityResult, error)
	// Create registers domainName. The development host only simulates it.
	Create(ctx context.Context, domainName string) (*CreateDomainResponse, error)
	Get(ctx context.Context, domainName string) (*Domain, error)
	Update(ctx context.Context, domainName string, request *UpdateDomainRequest) (*Domain, error)
	// GetAuthCode returns the transfer authorization (EPP) code.
	GetAuthCode(ctx context.Context, domainName string) (string, error)
	SetNameservers(ctx context.Context, domainName string, nameservers []string) (*Domain, error)
}

// DNSClient manages the resource records of a domain.
type DNSClient interface {
	List(ctx context.Context, domainName string) ([]DNSRecord, error)
	Get(ctx context.Context, domainName string, id int) (*DNSRecord, error)
	Create(ctx context.Context, domainName string, request *DNSRecordRequest) (*DNSRecord, error)
	Update(ctx context.Context, domainName string, id int, request *DNSRecordRequest) (*DNSRecord, error)
	Delete(ctx context.Context, domainName string, id int) error
}

// DNSSECClient manages DS records. Records are addressed by digest.
type DNSSECClient interface {
	List(ctx context.Context, domainName string) ([]DNSSECRecord, error)
	Get(ctx context.Context, domainName, digest string) (*DNSSECRecord, error)
	Create(ctx context.Context, domainName string, request *DNSSECCreateRequest) (*DNSSECRecord, error)
	Delete(ctx context.Context, domainName, digest string) error
}

// URLForwardingClient manages URL forwardings, addressed by host.
type URLForwardingClient interface {
	List(ctx context.Context, domainName string) ([]URLForwarding, error)
	Get(ctx context.Context, domainName, host string) (*URLForwarding, error)
	Create(ctx context.Context, domainName string, request *URLForwardingCreateRequest) (*URLForwarding, error)
	Update(ctx context.Context, domainName, host string, request *URLForwardingUpdateRequest) (*URLForwarding, error)
	Delete(ctx context.Context, domainName, host string) error
}

// VanityNameserversClient manages nameserver hosts under a domain.
type VanityNameserversClient interface {
	List(ctx context.Context, domainName string) ([]VanityNameserver, error)
	Get(ctx context.Context, domainName, hostname string) (*VanityNameserver, error)
	Create(ctx context.Context, domainName string, request *VanityNameserverCreateRequest) (*VanityNameserver, error)
	Update(ctx context.Context, domainName, hostname string, ips []string) (*VanityNameserver, error)
	Delete(ctx context.Context, domainName, hostname string) error
}

// Config holds configuration for a Name.com client.
type Config struct {
	// Username and Token authenticate every request with HTTP Basic auth.
	Username string
	Token    string

	// Host is the API origin. Empty means ProductionHost.
	Host string

	// HTTPTimeout bounds each HTTP attempt. Empty means 30s.
	HTTPTimeout time.Duration
	// PageSize is sent as perPage on list calls. Zero leaves the server
	// default; the server caps it at 1000.
	PageSize int
	// MaxPages bounds every list sweep. Zero means a generous default.
	MaxPages int

	// RetryMax enables retries of connection errors, 429 and 5xx responses.
	// Zero sends each request exactly once.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger registrar.Logger
	// UserAgent overrides the User-Agent header.
	UserAgent string
}
