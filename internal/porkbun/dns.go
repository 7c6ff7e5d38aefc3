package porkbun

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// DNSClient implements porkbun.DNSClient.
type DNSClient struct {
	api *api
}

type recordsResponse struct {
	Records []porkbun.DNSRecord `json:"records"`
}

func (c *DNSClient) retrieve(ctx context.Context, path string) ([]porkbun.DNSRecord, error) {
	var resp recordsResponse

	err := c.api.rest.Post(ctx, path, nil, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Records == nil {
		resp.Records = []porkbun.DNSRecord{}
	}

	return resp.Records, nil
}

// Create implements porkbun.DNSClient.Create.
func (c *DNSClient) Create(ctx context.Context, domain string, request *porkbun.DNSRecordCreateRequest) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}

	err := c.api.rest.Post(ctx, endpoint("/dns/create/", domain), request, &resp)
	if err != nil {
		return 0, fmt.Errorf("creating %s record in %s: %w", request.Type, domain, err)
	}

	return resp.ID, nil
}

// Edit implements porkbun.DNSClient.Edit.
func (c *DNSClient) Edit(ctx context.Context, domain string, id int64, request *porkbun.DNSRecordEditRequest) error {
	err := c.api.rest.Post(ctx, endpoint("/dns/edit/", domain, strconv.FormatInt(id, 10)), request, nil)
	if err != nil {
		return fmt.Errorf("editing record %d of %s: %w", id, domain, err)
	}

	return nil
}

// EditByNameType implements porkbun.DNSClient.EditByNameType.
func (c *DNSClient) EditByNameType(ctx context.Context, domain, recordType, subdomain string, request *porkbun.DNSRecordNameTypeEditRequest) error {
	err := c.api.rest.Post(ctx, endpoint("/dns/editByNameType/", domain, recordType, subdomain), request, nil)
	if err != nil {
		return fmt.Errorf("editing %s records of %s: %w", recordType, domain, err)
	}

	return nil
}

// Delete implements porkbun.DNSClient.Delete.
func (c *DNSClient) Delete(ctx context.Context, domain string, id int64) error {
	err := c.api.rest.Post(ctx, endpoint("/dns/delete/", domain, strconv.FormatInt(id, 10)), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting record %d of %s: %w", id, domain, err)
	}

	return nil
}

// DeleteByNameType implements porkbun.DNSClient.DeleteByNameType.
func (c *DNSClient) DeleteByNameType(ctx context.Context, domain, recordType, subdomain string) error {
	err := c.api.rest.Post(ctx, endpoint("/dns/deleteByNameType/", domain, recordType, subdomain), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting %s records of %s: %w", recordType, domain, err)
	}

	return nil
}

// Retrieve implements porkbun.DNSClient.Retrieve.
func (c *DNSClient) Retrieve(ctx context.Context, domain string) ([]porkbun.DNSRecord, error) {
	records, err := c.retrieve(ctx, endpoint("/dns/retrieve/", domain))
	if err != nil {
		return nil, fmt.Errorf("retrieving records of %s: %w", domain, err)
	}

	return records, nil
}

// RetrieveByID implements porkbun.DNSClient.RetrieveByID.
func (c *DNSClient) RetrieveByID(ctx context.Context, domain string, id int64) (*porkbun.DNSRecord, error) {
	records, err := c.retrieve(ctx, endpoint("/dns/retrieve/", domain, strconv.FormatInt(id, 10)))
	if err != nil {
		return nil, fmt.Errorf("retrieving record %d of %s: %w", id, domain, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("retrieving record %d of %s: %w", id, domain, registrar.ErrRecordNotFound)
	}

	return &records[0], nil
}

// RetrieveByNameType implements porkbun.DNSClient.RetrieveByNameType.
func (c *DNSClient) RetrieveByNameType(ctx context.Context, domain, recordType, subdomain string) ([]porkbun.DNSRecord, error) {
	records, err := c.retrieve(ctx, endpoint("/dns/retrieveByNameType/", domain, recordType, subdomain))
	if err != nil {
		return nil, fmt.Errorf("retrieving %s records of %s: %w", recordType, domain, err)
	}

	return records, nil
}
