package namecom

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// VanityNameserversClient implements namecom.VanityNameserversClient.
type VanityNameserversClient struct {
	api *api
}

type listVanityNameserversResponse struct {
	VanityNameservers []namecom.VanityNameserver `json:"vanityNameservers"`
	NextPage          *int                       `json:"nextPage"`
	LastPage          *int                       `json:"lastPage"`
}

func vanityPath(domainName, hostname string) string {
	return domainPath(domainName, "/vanity_nameservers/", url.PathEscape(hostname))
}

// List implements namecom.VanityNameserversClient.List.
func (c *VanityNameserversClient) List(ctx context.Context, domainName string) ([]namecom.VanityNameserver, error) {
	fetch := pageFetcher(c.api, domainPath(domainName, "/vanity_nameservers"), func(body *listVanityNameserversResponse) ([]namecom.VanityNameserver, *int) {
		return body.VanityNameservers, body.NextPage
	})

	nameservers, err := registrar.FetchAll(ctx, registrar.NextPageNumber{}, fetch, c.api.pagination)
	if err != nil {
		return nil, fmt.Errorf("listing vanity nameservers of %s: %w", domainName, err)
	}

	return nameservers, nil
}

// Get implements namecom.VanityNameserversClient.Get.
func (c *VanityNameserversClient) Get(ctx context.Context, domainName, hostname string) (*namecom.VanityNameserver, error) {
	var nameserver namecom.VanityNameserver

	err := c.api.rest.Get(ctx, vanityPath(domainName, hostname), nil, &nameserver)
	if err != nil {
		return nil, fmt.Errorf("getting vanity nameserver %s: %w", hostname, err)
	}

	return &nameserver, nil
}

// Create implements namecom.VanityNameserversClient.Create.
func (c *VanityNameserversClient) Create(ctx context.Context, domainName string, request *namecom.VanityNameserverCreateRequest) (*namecom.VanityNameserver, error) {
	var nameserver namecom.VanityNameserver

	err := c.api.rest.Post(ctx, domainPath(domainName, "/vanity_nameservers"), request, &nameserver)
	if err != nil {
		return nil, fmt.Errorf("creating vanity nameserver in %s: %w", domainName, err)
	}

	return &nameserver, nil
}

// Update implements namecom.VanityNameserversClient.Update.
func (c *VanityNameserversClient) Update(ctx context.Context, domainName, hostname string, ips []string) (*namecom.VanityNameserver, error) {
	request := struct {
		IPs []string `json:"ips"`
	}{IPs: ips}

	var nameserver namecom.VanityNameserver

	err := c.api.rest.Put(ctx, vanityPath(domainName, hostname), request, &nameserver)
	if err != nil {
		return nil, fmt.Errorf("updating vanity nameserver %s: %w", hostname, err)
	}

	return &nameserver, nil
}

// Delete implements namecom.VanityNameserversClient.Delete.
func (c *VanityNameserversClient) Delete(ctx context.Context, domainName, hostname string) error {
	err := c.api.rest.Delete(ctx, vanityPath(domainName, hostname), nil)
	if err != nil {
		return fmt.Errorf("deleting vanity nameserver %s: %w", hostname, err)
	}

	return nil
}
