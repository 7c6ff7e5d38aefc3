// Package porkbun implements the Porkbun v3 client.
package porkbun

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/internal/response"
	"github.com/fivetwenty-io/registrar-client/internal/rest"
	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// Client implements porkbun.Client.
type Client struct {
	api *api

	domains *DomainsClient
	dns     *DNSClient
	dnssec  *DNSSECClient
	ssl     *SSLClient
}

type api struct {
	rest       *rest.Client
	pagination *registrar.PaginationOptions
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *porkbun.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a Porkbun client.
func New(config *porkbun.Config) (*Client, error) {
	if config == nil {
		return nil, registrar.ErrConfigRequired
	}

	if config.APIKey == "" || config.SecretAPIKey == "" {
		return nil, fmt.Errorf("porkbun: %w", registrar.ErrCredentialsRequired)
	}

	shared := newAPI(config, http.EmbeddedAuth{Fields: map[string]string{
		"apikey":       config.APIKey,
		"secretapikey": config.SecretAPIKey,
	}})

	return &Client{
		api:     shared,
		domains: &DomainsClient{api: shared},
		dns:     &DNSClient{api: shared},
		dnssec:  &DNSSECClient{api: shared},
		ssl:     &SSLClient{api: shared},
	}, nil
}

// PublicClient implements porkbun.PublicClient. It carries no credentials.
type PublicClient struct {
	api *api
}

// NewPublic creates a client for the endpoints that need no API keys.
// Credentials in config are ignored.
func NewPublic(config *porkbun.Config) (*PublicClient, error) {
	if config == nil {
		return nil, registrar.ErrConfigRequired
	}

	return &PublicClient{api: newAPI(config, nil)}, nil
}

func newAPI(config *porkbun.Config, auth http.Authenticator) *api {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.PorkbunBaseURL
	}

	transport := http.NewClient(baseURL, auth, createHTTPClientOptions(config)...)

	return &api{
		rest:       rest.New(transport, response.EnvelopePolicy{}),
		pagination: &registrar.PaginationOptions{MaxPages: config.MaxPages},
	}
}

// Ping implements porkbun.Client.Ping.
func (c *Client) Ping(ctx context.Context) (*porkbun.Ping, error) {
	var ping porkbun.Ping

	err := c.api.rest.Post(ctx, "/ping", nil, &ping)
	if err != nil {
		return nil, fmt.Errorf("pinging: %w", err)
	}

	return &ping, nil
}

// Pricing implements porkbun.PublicClient.Pricing.
func (c *Client) Pricing(ctx context.Context) (map[string]porkbun.TLDPricing, error) {
	return pricing(ctx, c.api)
}

// Pricing implements porkbun.PublicClient.Pricing.
func (c *PublicClient) Pricing(ctx context.Context) (map[string]porkbun.TLDPricing, error) {
	return pricing(ctx, c.api)
}

func pricing(ctx context.Context, api *api) (map[string]porkbun.TLDPricing, error) {
	var resp struct {
		Pricing map[string]porkbun.TLDPricing `json:"pricing"`
	}

	err := api.rest.Call(ctx, &http.Request{
		Method:          nethttp.MethodPost,
		Path:            "/pricing/get",
		Body:            struct{}{},
		Unauthenticated: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("getting pricing: %w", err)
	}

	if resp.Pricing == nil {
		resp.Pricing = map[string]porkbun.TLDPricing{}
	}

	return resp.Pricing, nil
}

// Domains implements porkbun.Client.Domains.
func (c *Client) Domains() porkbun.DomainsClient {
	return c.domains
}

// DNS implements porkbun.Client.DNS.
func (c *Client) DNS() porkbun.DNSClient {
	return c.dns
}

// DNSSEC implements porkbun.Client.DNSSEC.
func (c *Client) DNSSEC() porkbun.DNSSECClient {
	return c.dnssec
}

// SSL implements porkbun.Client.SSL.
func (c *Client) SSL() porkbun.SSLClient {
	return c.ssl
}

// endpoint joins an operation prefix with escaped path segments. Empty
// trailing segments are dropped.
func endpoint(prefix string, segments ...string) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for i, segment := range segments {
		if segment == "" {
			continue
		}

		if i > 0 {
			builder.WriteByte('/')
		}

		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

// Compile-time interface checks.
var (
	_ porkbun.Client        = (*Client)(nil)
	_ porkbun.PublicClient  = (*PublicClient)(nil)
	_ porkbun.DomainsClient = (*DomainsClient)(nil)
	_ porkbun.DNSClient     = (*DNSClient)(nil)
	_ porkbun.DNSSECClient  = (*DNSSECClient)(nil)
	_ porkbun.SSLClient     = (*SSLClient)(nil)
)
