package namecom

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// URLForwardingClient implements namecom.URLForwardingClient.
type URLForwardingClient struct {
	api *api
}

type listURLForwardingResponse struct {
	URLForwarding []namecom.URLForwarding `json:"urlForwarding"`
	NextPage      *int                    `json:"nextPage"`
	LastPage      *int                    `json:"lastPage"`
}

// urlForwardingCreate is the wire body of a create call, which repeats the
// domain name.
type urlForwardingCreate struct {
	DomainName string `json:"domainName"`
	*namecom.URLForwardingCreateRequest
}

func forwardingPath(domainName, host string) string {
	return domainPath(domainName, "/url/forwarding/", url.PathEscape(host))
}

// List implements namecom.URLForwardingClient.List.
func (c *URLForwardingClient) List(ctx context.Context, domainName string) ([]namecom.URLForwarding, error) {
	fetch := pageFetcher(c.api, domainPath(domainName, "/url/forwarding"), func(body *listURLForwardingResponse) ([]namecom.URLForwarding, *int) {
		return body.URLForwarding, body.NextPage
	})

	forwardings, err := registrar.FetchAll(ctx, registrar.NextPageNumber{}, fetch, c.api.pagination)
	if err != nil {
		return nil, fmt.Errorf("listing URL forwardings of %s: %w", domainName, err)
	}

	return forwardings, nil
}

// Get implements namecom.URLForwardingClient.Get.
func (c *URLForwardingClient) Get(ctx context.Context, domainName, host string) (*namecom.URLForwarding, error) {
	var forwarding namecom.URLForwarding

	err := c.api.rest.Get(ctx, forwardingPath(domainName, host), nil, &forwarding)
	if err != nil {
		return nil, fmt.Errorf("getting URL forwarding %s of %s: %w", host, domainName, err)
	}

	return &forwarding, nil
}

// Create implements namecom.URLForwardingClient.Create.
func (c *URLForwardingClient) Create(ctx context.Context, domainName string, request *namecom.URLForwardingCreateRequest) (*namecom.URLForwarding, error) {
	var forwarding namecom.URLForwarding

	body := urlForwardingCreate{DomainName: domainName, URLForwardingCreateRequest: request}

	err := c.api.rest.Post(ctx, domainPath(domainName, "/url/forwarding"), body, &forwarding)
	if err != nil {
		return nil, fmt.Errorf("creating URL forwarding in %s: %w", domainName, err)
	}

	return &forwarding, nil
}

// Update implements namecom.URLForwardingClient.Update.
func (c *URLForwardingClient) Update(ctx context.Context, domainName, host string, request *namecom.URLForwardingUpdateRequest) (*namecom.URLForwarding, error) {
	var forwarding namecom.URLForwarding

	err := c.api.rest.Put(ctx, forwardingPath(domainName, host), request, &forwarding)
	if err != nil {
		return nil, fmt.Errorf("updating URL forwarding %s of %s: %w", host, domainName, err)
	}

	return &forwarding, nil
}

// Delete implements namecom.URLForwardingClient.Delete.
func (c *URLForwardingClient) Delete(ctx context.Context, domainName, host string) error {
	err := c.api.rest.Delete(ctx, forwardingPath(domainName, host), nil)
	if err != nil {
		return fmt.Errorf("deleting URL forwarding %s of %s: %w", host, domainName, err)
	}

	return nil
}
