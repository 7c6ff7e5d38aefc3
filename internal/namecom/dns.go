package namecom

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// DNSClient implements namecom.DNSClient.
type DNSClient struct {
	api *api
}

type listRecordsResponse struct {
	Records  []namecom.DNSRecord `json:"records"`
	NextPage *int                `json:"nextPage"`
	LastPage *int                `json:"lastPage"`
}

func recordPath(domainName string, id int) string {
	return domainPath(domainName, "/records/", strconv.Itoa(id))
}

// List implements namecom.DNSClient.List.
func (c *DNSClient) List(ctx context.Context, domainName string) ([]namecom.DNSRecord, error) {
	fetch := pageFetcher(c.api, domainPath(domainName, "/records"), func(body *listRecordsResponse) ([]namecom.DNSRecord, *int) {
		return body.Records, body.NextPage
	})

	records, err := registrar.FetchAll(ctx, registrar.NextPageNumber{}, fetch, c.api.pagination)
	if err != nil {
		return nil, fmt.Errorf("listing records of %s: %w", domainName, err)
	}

	return records, nil
}

// Get implements namecom.DNSClient.Get.
func (c *DNSClient) Get(ctx context.Context, domainName string, id int) (*namecom.DNSRecord, error) {
	var record namecom.DNSRecord

	err := c.api.rest.Get(ctx, recordPath(domainName, id), nil, &record)
	if err != nil {
		return nil, fmt.Errorf("getting record %d of %s: %w", id, domainName, err)
	}

	return &record, nil
}

// Create implements namecom.DNSClient.Create.
func (c *DNSClient) Create(ctx context.Context, domainName string, request *namecom.DNSRecordRequest) (*namecom.DNSRecord, error) {
	var record namecom.DNSRecord

	err := c.api.rest.Post(ctx, domainPath(domainName, "/records"), request, &record)
	if err != nil {
		return nil, fmt.Errorf("creating record in %s: %w", domainName, err)
	}

	return &record, nil
}

// Update implements namecom.DNSClient.Update.
func (c *DNSClient) Update(ctx context.Context, domainName string, id int, request *namecom.DNSRecordRequest) (*namecom.DNSRecord, error) {
	var record namecom.DNSRecord

	err := c.api.rest.Put(ctx, recordPath(domainName, id), request, &record)
	if err != nil {
		return nil, fmt.Errorf("updating record %d of %s: %w", id, domainName, err)
	}

	return &record, nil
}

// Delete implements namecom.DNSClient.Delete.
func (c *DNSClient) Delete(ctx context.Context, domainName string, id int) error {
	err := c.api.rest.Delete(ctx, recordPath(domainName, id), nil)
	if err != nil {
		return fmt.Errorf("deleting record %d of %s: %w", id, domainName, err)
	}

	return nil
}
