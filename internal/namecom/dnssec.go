package namecom

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
)

// DNSSECClient implements namecom.DNSSECClient.
type DNSSECClient struct {
	api *api
}

// List implements namecom.DNSSECClient.List. The listing is a single page.
func (c *DNSSECClient) List(ctx context.Context, domainName string) ([]namecom.DNSSECRecord, error) {
	var resp struct {
		DNSSEC []namecom.DNSSECRecord `json:"dnssec"`
	}

	err := c.api.rest.Get(ctx, domainPath(domainName, "/dnssec"), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("listing DNSSEC records of %s: %w", domainName, err)
	}

	if resp.DNSSEC == nil {
		resp.DNSSEC = []namecom.DNSSECRecord{}
	}

	return resp.DNSSEC, nil
}

// Get implements namecom.DNSSECClient.Get.
func (c *DNSSECClient) Get(ctx context.Context, domainName, digest string) (*namecom.DNSSECRecord, error) {
	var record namecom.DNSSECRecord

	err := c.api.rest.Get(ctx, domainPath(domainName, "/dnssec/", url.PathEscape(digest)), nil, &record)
	if err != nil {
		return nil, fmt.Errorf("getting DNSSEC record of %s: %w", domainName, err)
	}

	return &record, nil
}

// Create implements namecom.DNSSECClient.Create.
func (c *DNSSECClient) Create(ctx context.Context, domainName string, request *namecom.DNSSECCreateRequest) (*namecom.DNSSECRecord, error) {
	var record namecom.DNSSECRecord

	err := c.api.rest.Post(ctx, domainPath(domainName, "/dnssec"), request, &record)
	if err != nil {
		return nil, fmt.Errorf("creating DNSSEC record in %s: %w", domainName, err)
	}

	return &record, nil
}

// Delete implements namecom.DNSSECClient.Delete.
func (c *DNSSECClient) Delete(ctx context.Context, domainName, digest string) error {
	err := c.api.rest.Delete(ctx, domainPath(domainName, "/dnssec/", url.PathEscape(digest)), nil)
	if err != nil {
		return fmt.Errorf("deleting DNSSEC record of %s: %w", domainName, err)
	}

	return nil
}
