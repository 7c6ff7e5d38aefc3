package porkbun

import (
	"context"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// DomainsClient implements porkbun.DomainsClient.
type DomainsClient struct {
	api *api
}

type listAllRequest struct {
	Start         int    `json:"start,string"`
	IncludeLabels string `json:"includeLabels,omitempty"`
}

type urlForwardBody struct {
	Subdomain   string `json:"subdomain,omitempty"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	IncludePath string `json:"includePath"`
	Wildcard    string `json:"wildcard"`
}

type glueBody struct {
	IPs []netip.Addr `json:"ips"`
}

func yesNo(value bool) string {
	if value {
		return constants.Yes
	}

	return constants.No
}

func (c *DomainsClient) fetcher(options *porkbun.ListOptions) registrar.PageFetcher[porkbun.DomainInfo] {
	request := listAllRequest{}
	if options != nil && options.IncludeLabels {
		request.IncludeLabels = constants.Yes
	}

	return func(ctx context.Context, start int) (*registrar.Page[porkbun.DomainInfo], error) {
		var resp struct {
			Domains []porkbun.DomainInfo `json:"domains"`
		}

		body := request
		body.Start = start

		err := c.api.rest.Post(ctx, "/domain/listAll", body, &resp)
		if err != nil {
			return nil, err
		}

		return &registrar.Page[porkbun.DomainInfo]{Items: resp.Domains}, nil
	}
}

// ListAll implements porkbun.DomainsClient.ListAll.
func (c *DomainsClient) ListAll(ctx context.Context, options *porkbun.ListOptions) ([]porkbun.DomainInfo, error) {
	domains, err := registrar.FetchAll(ctx, registrar.OffsetByCount{}, c.fetcher(options), c.api.pagination)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	return domains, nil
}

// StreamAll implements porkbun.DomainsClient.StreamAll.
func (c *DomainsClient) StreamAll(ctx context.Context, options *porkbun.ListOptions) <-chan registrar.PageResult[porkbun.DomainInfo] {
	return registrar.StreamPages(ctx, registrar.OffsetByCount{}, c.fetcher(options), c.api.pagination)
}

// GetNameservers implements porkbun.DomainsClient.GetNameservers.
func (c *DomainsClient) GetNameservers(ctx context.Context, domain string) ([]string, error) {
	var resp struct {
		NS []string `json:"ns"`
	}

	err := c.api.rest.Post(ctx, endpoint("/domain/getNs/", domain), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("getting nameservers of %s: %w", domain, err)
	}

	return resp.NS, nil
}

// UpdateNameservers implements porkbun.DomainsClient.UpdateNameservers.
func (c *DomainsClient) UpdateNameservers(ctx context.Context, domain string, nameservers []string) error {
	body := struct {
		NS []string `json:"ns"`
	}{NS: nameservers}

	err := c.api.rest.Post(ctx, endpoint("/domain/updateNs/", domain), body, nil)
	if err != nil {
		return fmt.Errorf("updating nameservers of %s: %w", domain, err)
	}

	return nil
}

// AddURLForward implements porkbun.DomainsClient.AddURLForward.
func (c *DomainsClient) AddURLForward(ctx context.Context, domain string, request *porkbun.URLForwardRequest) error {
	body := urlForwardBody{
		Subdomain:   request.Subdomain,
		Location:    request.Location,
		Type:        request.Type,
		IncludePath: yesNo(request.IncludePath),
		Wildcard:    yesNo(request.Wildcard),
	}

	err := c.api.rest.Post(ctx, endpoint("/domain/addUrlForward/", domain), body, nil)
	if err != nil {
		return fmt.Errorf("adding URL forward to %s: %w", domain, err)
	}

	return nil
}

// GetURLForwarding implements porkbun.DomainsClient.GetURLForwarding.
func (c *DomainsClient) GetURLForwarding(ctx context.Context, domain string) ([]porkbun.URLForward, error) {
	var resp struct {
		Forwards []porkbun.URLForward `json:"forwards"`
	}

	err := c.api.rest.Post(ctx, endpoint("/domain/getUrlForwarding/", domain), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("getting URL forwards of %s: %w", domain, err)
	}

	if resp.Forwards == nil {
		resp.Forwards = []porkbun.URLForward{}
	}

	return resp.Forwards, nil
}

// DeleteURLForward implements porkbun.DomainsClient.DeleteURLForward.
func (c *DomainsClient) DeleteURLForward(ctx context.Context, domain string, id int64) error {
	err := c.api.rest.Post(ctx, endpoint("/domain/deleteUrlForward/", domain, strconv.FormatInt(id, 10)), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting URL forward %d of %s: %w", id, domain, err)
	}

	return nil
}

// Check implements porkbun.DomainsClient.Check.
func (c *DomainsClient) Check(ctx context.Context, domain string) (*porkbun.DomainCheck, error) {
	var check porkbun.DomainCheck

	err := c.api.rest.Post(ctx, endpoint("/domain/checkDomain/", domain), nil, &check)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", domain, err)
	}

	return &check, nil
}

// CreateGlue implements porkbun.DomainsClient.CreateGlue.
func (c *DomainsClient) CreateGlue(ctx context.Context, domain, subdomain string, ips []netip.Addr) error {
	err := c.api.rest.Post(ctx, endpoint("/domain/createGlue/", domain, subdomain), glueBody{IPs: ips}, nil)
	if err != nil {
		return fmt.Errorf("creating glue %s.%s: %w", subdomain, domain, err)
	}

	return nil
}

// UpdateGlue implements porkbun.DomainsClient.UpdateGlue.
func (c *DomainsClient) UpdateGlue(ctx context.Context, domain, subdomain string, ips []netip.Addr) error {
	err := c.api.rest.Post(ctx, endpoint("/domain/updateGlue/", domain, subdomain), glueBody{IPs: ips}, nil)
	if err != nil {
		return fmt.Errorf("updating glue %s.%s: %w", subdomain, domain, err)
	}

	return nil
}

// DeleteGlue implements porkbun.DomainsClient.DeleteGlue.
func (c *DomainsClient) DeleteGlue(ctx context.Context, domain, subdomain string) error {
	err := c.api.rest.Post(ctx, endpoint("/domain/deleteGlue/", domain, subdomain), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting glue %s.%s: %w", subdomain, domain, err)
	}

	return nil
}

// GetGlue implements porkbun.DomainsClient.GetGlue.
func (c *DomainsClient) GetGlue(ctx context.Context, domain string) ([]porkbun.GlueRecord, error) {
	var resp struct {
		Hosts []porkbun.GlueRecord `json:"hosts"`
	}

	err := c.api.rest.Post(ctx, endpoint("/domain/getGlue/", domain), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("getting glue records of %s: %w", domain, err)
	}

	if resp.Hosts == nil {
		resp.Hosts = []porkbun.GlueRecord{}
	}

	return resp.Hosts, nil
}
