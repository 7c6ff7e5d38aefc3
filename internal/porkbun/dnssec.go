package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// DNSSECClient implements porkbun.DNSSECClient.
type DNSSECClient struct {
	api *api
}

// Create implements porkbun.DNSSECClient.Create.
func (c *DNSSECClient) Create(ctx context.Context, domain string, record *porkbun.DNSSECRecord) error {
	err := c.api.rest.Post(ctx, endpoint("/dns/createDnssecRecord/", domain), record, nil)
	if err != nil {
		return fmt.Errorf("creating DNSSEC record in %s: %w", domain, err)
	}

	return nil
}

// List implements porkbun.DNSSECClient.List. An account without records
// gets an empty array instead of an object; both decode to an empty map.
func (c *DNSSECClient) List(ctx context.Context, domain string) (map[string]porkbun.DNSSECRecord, error) {
	var resp struct {
		Records json.RawMessage `json:"records"`
	}

	err := c.api.rest.Post(ctx, endpoint("/dns/getDnssecRecords/", domain), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("listing DNSSEC records of %s: %w", domain, err)
	}

	records := map[string]porkbun.DNSSECRecord{}

	trimmed := bytes.TrimSpace(resp.Records)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return records, nil
	}

	err = json.Unmarshal(trimmed, &records)
	if err != nil {
		return nil, &registrar.DecodeError{Body: resp.Records, Err: err}
	}

	return records, nil
}

// Delete implements porkbun.DNSSECClient.Delete.
func (c *DNSSECClient) Delete(ctx context.Context, domain, keyTag string) error {
	err := c.api.rest.Post(ctx, endpoint("/dns/deleteDnssecRecord/", domain, keyTag), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting DNSSEC record %s of %s: %w", keyTag, domain, err)
	}

	return nil
}
