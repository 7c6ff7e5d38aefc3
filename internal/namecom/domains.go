package namecom

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// DomainsClient implements namecom.DomainsClient.
type DomainsClient struct {
	api *api
}

type listDomainsResponse struct {
	Domains  []namecom.Domain `json:"domains"`
	NextPage *int             `json:"nextPage"`
	LastPage *int             `json:"lastPage"`
}

func (c *DomainsClient) fetcher() registrar.PageFetcher[namecom.Domain] {
	return pageFetcher(c.api, domainsPath, func(body *listDomainsResponse) ([]namecom.Domain, *int) {
		return body.Domains, body.NextPage
	})
}

// List implements namecom.DomainsClient.List.
func (c *DomainsClient) List(ctx context.Context) ([]namecom.Domain, error) {
	domains, err := registrar.FetchAll(ctx, registrar.NextPageNumber{}, c.fetcher(), c.api.pagination)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	return domains, nil
}

// Stream implements namecom.DomainsClient.Stream.
func (c *DomainsClient) Stream(ctx context.Context) <-chan registrar.PageResult[namecom.Domain] {
	return registrar.StreamPages(ctx, registrar.NextPageNumber{}, c.fetcher(), c.api.pagination)
}

// CheckAvailability implements namecom.DomainsClient.CheckAvailability.
func (c *DomainsClient) CheckAvailability(ctx context.Context, domainNames []string) ([]namecom.AvailabilityResult, error) {
	request := struct {
		DomainNames []string `json:"domainNames"`
	}{DomainNames: domainNames}

	var resp struct {
		Results []namecom.AvailabilityResult `json:"results"`
	}

	err := c.api.rest.Post(ctx, domainsPath+":checkAvailability", request, &resp)
	if err != nil {
		return nil, fmt.Errorf("checking availability: %w", err)
	}

	if resp.Results == nil {
		resp.Results = []namecom.AvailabilityResult{}
	}

	return resp.Results, nil
}

// Create implements namecom.DomainsClient.Create.
func (c *DomainsClient) Create(ctx context.Context, domainName string) (*namecom.CreateDomainResponse, error) {
	request := map[string]interface{}{
		"domain": map[string]string{"domainName": domainName},
	}

	var created namecom.CreateDomainResponse

	err := c.api.rest.Post(ctx, domainsPath, request, &created)
	if err != nil {
		return nil, fmt.Errorf("creating domain %s: %w", domainName, err)
	}

	return &created, nil
}

// Get implements namecom.DomainsClient.Get.
func (c *DomainsClient) Get(ctx context.Context, domainName string) (*namecom.Domain, error) {
	var domain namecom.Domain

	err := c.api.rest.Get(ctx, domainPath(domainName), nil, &domain)
	if err != nil {
		return nil, fmt.Errorf("getting domain %s: %w", domainName, err)
	}

	return &domain, nil
}

// Update implements namecom.DomainsClient.Update.
func (c *DomainsClient) Update(ctx context.Context, domainName string, request *namecom.UpdateDomainRequest) (*namecom.Domain, error) {
	var domain namecom.Domain

	err := c.api.rest.Patch(ctx, domainPath(domainName), request, &domain)
	if err != nil {
		return nil, fmt.Errorf("updating domain %s: %w", domainName, err)
	}

	return &domain, nil
}

// GetAuthCode implements namecom.DomainsClient.GetAuthCode.
func (c *DomainsClient) GetAuthCode(ctx context.Context, domainName string) (string, error) {
	var resp struct {
		AuthCode string `json:"authCode"`
	}

	err := c.api.rest.Get(ctx, domainPath(domainName, ":getAuthCode"), nil, &resp)
	if err != nil {
		return "", fmt.Errorf("getting auth code for %s: %w", domainName, err)
	}

	return resp.AuthCode, nil
}

// SetNameservers implements namecom.DomainsClient.SetNameservers.
func (c *DomainsClient) SetNameservers(ctx context.Context, domainName string, nameservers []string) (*namecom.Domain, error) {
	request := struct {
		Nameservers []string `json:"nameservers"`
	}{Nameservers: nameservers}

	var domain namecom.Domain

	err := c.api.rest.Post(ctx, domainPath(domainName, ":setNameservers"), request, &domain)
	if err != nil {
		return nil, fmt.Errorf("setting nameservers for %s: %w", domainName, err)
	}

	return &domain, nil
}
