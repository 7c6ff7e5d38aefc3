// Package namecom implements the Name.com Core v1 client.
package namecom

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/internal/response"
	"github.com/fivetwenty-io/registrar-client/internal/rest"
	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

const (
	helloPath   = "/core/v1/hello"
	domainsPath = "/core/v1/domains"
)

// Client implements namecom.Client.
type Client struct {
	api *api

	domains           *DomainsClient
	dns               *DNSClient
	dnssec            *DNSSECClient
	urlForwarding     *URLForwardingClient
	vanityNameservers *VanityNameserversClient
}

// api is the state shared by the resource clients.
type api struct {
	rest       *rest.Client
	pageSize   int
	pagination *registrar.PaginationOptions
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *namecom.Config) []http.Option {
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

// New creates a Name.com client.
func New(config *namecom.Config) (*Client, error) {
	if config == nil {
		return nil, registrar.ErrConfigRequired
	}

	if config.Username == "" || config.Token == "" {
		return nil, fmt.Errorf("name.com: %w", registrar.ErrCredentialsRequired)
	}

	host := config.Host
	if host == "" {
		host = constants.NameComProductionHost
	}

	pageSize := config.PageSize
	if pageSize > constants.NameComMaxPageSize {
		pageSize = constants.NameComMaxPageSize
	}

	auth := http.BasicAuth{Username: config.Username, Password: config.Token}
	transport := http.NewClient(host, auth, createHTTPClientOptions(config)...)

	shared := &api{
		rest:       rest.New(transport, response.StatusPolicy{}),
		pageSize:   pageSize,
		pagination: &registrar.PaginationOptions{MaxPages: config.MaxPages},
	}

	return &Client{
		api:               shared,
		domains:           &DomainsClient{api: shared},
		dns:               &DNSClient{api: shared},
		dnssec:            &DNSSECClient{api: shared},
		urlForwarding:     &URLForwardingClient{api: shared},
		vanityNameservers: &VanityNameserversClient{api: shared},
	}, nil
}

// Hello implements namecom.Client.Hello.
func (c *Client) Hello(ctx context.Context) (*namecom.Hello, error) {
	var hello namecom.Hello

	err := c.api.rest.Get(ctx, helloPath, nil, &hello)
	if err != nil {
		return nil, fmt.Errorf("saying hello: %w", err)
	}

	return &hello, nil
}

// Domains implements namecom.Client.Domains.
func (c *Client) Domains() namecom.DomainsClient {
	return c.domains
}

// DNS implements namecom.Client.DNS.
func (c *Client) DNS() namecom.DNSClient {
	return c.dns
}

// DNSSEC implements namecom.Client.DNSSEC.
func (c *Client) DNSSEC() namecom.DNSSECClient {
	return c.dnssec
}

// URLForwarding implements namecom.Client.URLForwarding.
func (c *Client) URLForwarding() namecom.URLForwardingClient {
	return c.urlForwarding
}

// VanityNameservers implements namecom.Client.VanityNameservers.
func (c *Client) VanityNameservers() namecom.VanityNameserversClient {
	return c.vanityNameservers
}

// domainPath joins the path of one domain with optional suffixes such as
// "/records" or ":getAuthCode".
func domainPath(domainName string, suffix ...string) string {
	return domainsPath + "/" + url.PathEscape(domainName) + strings.Join(suffix, "")
}

func (a *api) pageQuery(page int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	if a.pageSize > 0 {
		query.Set("perPage", strconv.Itoa(a.pageSize))
	}

	return query
}

// pageFetcher fetches one page of a listing whose body is R; pick extracts
// the items and the announced next page.
func pageFetcher[T, R any](a *api, path string, pick func(*R) ([]T, *int)) registrar.PageFetcher[T] {
	return func(ctx context.Context, page int) (*registrar.Page[T], error) {
		var body R

		err := a.rest.Get(ctx, path, a.pageQuery(page), &body)
		if err != nil {
			return nil, err
		}

		items, next := pick(&body)

		return &registrar.Page[T]{Items: items, NextPage: next}, nil
	}
}

// Compile-time interface checks.
var (
	_ namecom.Client                  = (*Client)(nil)
	_ namecom.DomainsClient           = (*DomainsClient)(nil)
	_ namecom.DNSClient               = (*DNSClient)(nil)
	_ namecom.DNSSECClient            = (*DNSSECClient)(nil)
	_ namecom.URLForwardingClient     = (*URLForwardingClient)(nil)
	_ namecom.VanityNameserversClient = (*VanityNameserversClient)(nil)
)
