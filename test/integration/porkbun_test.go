//go:build integration

package integration

import (
	"context"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gluePropagationDelay = 3 * time.Second

// porkbunDomain skips the test when no owned domain is configured.
func porkbunDomain(t *testing.T) string {
	t.Helper()

	if testConfig.Porkbun.Domain == "" {
		t.Skip("Porkbun test domain not configured, skipping integration test")
	}

	return testConfig.Porkbun.Domain
}

func TestPorkbun_Ping(t *testing.T) {
	t.Parallel()

	client := porkbunClient(t)

	ping, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, ping.YourIP)
}

func TestPorkbun_Pricing(t *testing.T) {
	t.Parallel()

	client := porkbunClient(t)

	pricing, err := client.Pricing(context.Background())
	require.NoError(t, err)
	assert.Contains(t, pricing, "com")
}

func TestPorkbun_DNSRecord(t *testing.T) {
	t.Parallel()

	client := porkbunClient(t)
	domain := porkbunDomain(t)
	ctx := context.Background()
	content := uuid.NewString()

	id, err := client.DNS().Create(ctx, domain, &porkbun.DNSRecordCreateRequest{
		Name: GenerateTestName("integration-test-dns"), Type: "TXT", Content: content, TTL: "600",
	})
	require.NoError(t, err)

	registerCleanup(t, "porkbun dns record", func(ctx context.Context) error {
		return client.DNS().Delete(ctx, domain, id)
	})

	record, err := client.DNS().RetrieveByID(ctx, domain, id)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, content, record.Content)

	_, err = client.DNS().RetrieveByID(ctx, domain, 1)
	require.ErrorIs(t, err, registrar.ErrRecordNotFound)
}

func TestPorkbun_URLForward(t *testing.T) {
	t.Parallel()

	client := porkbunClient(t)
	domain := porkbunDomain(t)
	ctx := context.Background()
	subdomain := GenerateTestName("test-fwd")

	err := client.Domains().AddURLForward(ctx, domain, &porkbun.URLForwardRequest{
		Subdomain: subdomain, Location: "https://porkbun.com", Type: "temporary", IncludePath: true,
	})
	require.NoError(t, err)

	forwards, err := client.Domains().GetURLForwarding(ctx, domain)
	require.NoError(t, err)

	var created *porkbun.URLForward

	for i := range forwards {
		if forwards[i].Subdomain == subdomain {
			created = &forwards[i]
		}
	}

	require.NotNil(t, created, "URL forward %s not listed", subdomain)
	assert.Equal(t, "https://porkbun.com", created.Location)

	registerCleanup(t, "porkbun url forward", func(ctx context.Context) error {
		return client.Domains().DeleteURLForward(ctx, domain, created.ID)
	})
}

func TestPorkbun_Glue(t *testing.T) {
	t.Parallel()

	client := porkbunClient(t)
	domain := porkbunDomain(t)
	ctx := context.Background()
	subdomain := GenerateTestName("ns-drop")
	ips := []netip.Addr{netip.MustParseAddr("192.0.2.1"), netip.MustParseAddr("2001:db8::8888")}

	require.NoError(t, client.Domains().CreateGlue(ctx, domain, subdomain, ips))

	registerCleanup(t, "porkbun glue record", func(ctx context.Context) error {
		return client.Domains().DeleteGlue(ctx, domain, subdomain)
	})

	time.Sleep(gluePropagationDelay)

	records, err := client.Domains().GetGlue(ctx, domain)
	require.NoError(t, err)

	hostname := subdomain + "." + domain
	found := false

	for _, record := range records {
		if strings.EqualFold(record.Host, hostname) {
			found = true
		}
	}

	assert.True(t, found, "glue record %s not listed", hostname)
}

func TestPorkbun_ListAll(t *testing.T) {
	t.Parallel()

	client := porkbunClient(t)
	domain := porkbunDomain(t)

	domains, err := client.Domains().ListAll(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(domains))
	for _, info := range domains {
		names = append(names, info.Domain)
	}

	assert.Contains(t, names, domain)
}
