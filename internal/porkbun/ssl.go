package porkbun

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
)

// SSLClient implements porkbun.SSLClient.
type SSLClient struct {
	api *api
}

// Retrieve implements porkbun.SSLClient.Retrieve.
func (c *SSLClient) Retrieve(ctx context.Context, domain string) (*porkbun.SSLBundle, error) {
	var bundle porkbun.SSLBundle

	err := c.api.rest.Post(ctx, endpoint("/ssl/retrieve/", domain), nil, &bundle)
	if err != nil {
		return nil, fmt.Errorf("retrieving SSL bundle of %s: %w", domain, err)
	}

	return &bundle, nil
}
