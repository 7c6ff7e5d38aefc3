package porkbun

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Flag is a boolean the API spells as 1/0, "1"/"0", "yes"/"no" or
// true/false depending on the endpoint.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = false

		return nil
	}

	text := strings.Trim(string(data), `"`)

	switch strings.ToLower(text) {
	case "1", "yes", "true", "on":
		*f = true
	case "0", "no", "false", "off", "":
		*f = false
	default:
		return fmt.Errorf("parsing flag %s: %w", data, strconv.ErrSyntax)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"1"`), nil
	}

	return []byte(`"0"`), nil
}

// Ping is the response of the credential check.
type Ping struct {
	Status string `json:"status" yaml:"status"`
	YourIP string `json:"yourIp" yaml:"your_ip"`
}

// TLDPricing is the price list of one TLD.
type TLDPricing struct {
	Registration string `json:"registration" yaml:"registration"`
	Renewal      string `json:"renewal"      yaml:"renewal"`
	Transfer     string `json:"transfer"     yaml:"transfer"`
}

// Label is a user-defined tag on a domain.
type Label struct {
	ID    string `json:"id"    yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Color string `json:"color" yaml:"color"`
}

// DomainInfo is one domain of the account.
type DomainInfo struct {
	Domain       string  `json:"domain"           yaml:"domain"`
	Status       string  `json:"status"           yaml:"status"`
	TLD          string  `json:"tld"              yaml:"tld"`
	CreateDate   string  `json:"createDate"       yaml:"create_date"`
	ExpireDate   string  `json:"expireDate"       yaml:"expire_date"`
	SecurityLock Flag    `json:"securityLock"     yaml:"security_lock"`
	WhoisPrivacy Flag    `json:"whoisPrivacy"     yaml:"whois_privacy"`
	AutoRenew    Flag    `json:"autoRenew"        yaml:"auto_renew"`
	NotLocal     Flag    `json:"notLocal"         yaml:"not_local"`
	Labels       []Label `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// ListOptions tunes a domain listing.
type ListOptions struct {
	// IncludeLabels asks the server to attach labels to every domain.
	IncludeLabels bool
}

// URLForward is a forwarding rule of a domain.
type URLForward struct {
	ID          int64  `json:"id,string"   yaml:"id"`
	Subdomain   string `json:"subdomain"   yaml:"subdomain"`
	Location    string `json:"location"    yaml:"location"`
	Type        string `json:"type"        yaml:"type"`
	IncludePath string `json:"includePath" yaml:"include_path"`
	Wildcard    string `json:"wildcard"    yaml:"wildcard"`
}

// URLForwardRequest adds a forwarding rule. Type is "temporary" or
// "permanent"; an empty Subdomain forwards the apex.
type URLForwardRequest struct {
	Subdomain   string
	Location    string
	Type        string
	IncludePath bool
	Wildcard    bool
}

// PriceInfo is one price line of an availability check.
type PriceInfo struct {
	Type         string `json:"type"         yaml:"type"`
	Price        string `json:"price"        yaml:"price"`
	RegularPrice string `json:"regularPrice" yaml:"regular_price"`
}

// AdditionalPricing holds the follow-up prices of an availability check.
type AdditionalPricing struct {
	Renewal  PriceInfo `json:"renewal"  yaml:"renewal"`
	Transfer PriceInfo `json:"transfer" yaml:"transfer"`
}

// DomainAvailability describes whether and at which price a domain can be
// registered.
type DomainAvailability struct {
	Avail          Flag              `json:"avail"          yaml:"avail"`
	Type           string            `json:"type"           yaml:"type"`
	Price          string            `json:"price"          yaml:"price"`
	FirstYearPromo Flag              `json:"firstYearPromo" yaml:"first_year_promo"`
	RegularPrice   string            `json:"regularPrice"   yaml:"regular_price"`
	Premium        Flag              `json:"premium"        yaml:"premium"`
	Additional     AdditionalPricing `json:"additional"     yaml:"additional"`
}

// RateLimit reports the availability-check quota.
type RateLimit struct {
	TTL             string `json:"TTL"             yaml:"ttl"`
	Limit           string `json:"limit"           yaml:"limit"`
	Used            int    `json:"used"            yaml:"used"`
	NaturalLanguage string `json:"naturalLanguage" yaml:"natural_language"`
}

// DomainCheck is the outcome of an availability check.
type DomainCheck struct {
	Response DomainAvailability `json:"response" yaml:"response"`
	Limits   RateLimit          `json:"limits"   yaml:"limits"`
}

// GlueRecord is a nameserver host under the domain with its addresses. The
// API encodes each record as a [host, {"v4": [...], "v6": [...]}] pair.
type GlueRecord struct {
	Host string       `yaml:"host"`
	IPv4 []netip.Addr `yaml:"ipv4"`
	IPv6 []netip.Addr `yaml:"ipv6"`
}

type glueAddresses struct {
	V4 []netip.Addr `json:"v4"`
	V6 []netip.Addr `json:"v6"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GlueRecord) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage

	err := json.Unmarshal(data, &pair)
	if err != nil {
		return fmt.Errorf("parsing glue record: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("parsing glue record: %w: want [host, addresses], got %d elements", ErrMalformedGlue, len(pair))
	}

	var addresses glueAddresses

	err = json.Unmarshal(pair[0], &g.Host)
	if err != nil {
		return fmt.Errorf("parsing glue host: %w", err)
	}

	err = json.Unmarshal(pair[1], &addresses)
	if err != nil {
		return fmt.Errorf("parsing glue addresses of %s: %w", g.Host, err)
	}

	g.IPv4 = addresses.V4
	g.IPv6 = addresses.V6

	return nil
}

// MarshalJSON implements json.Marshaler using the wire pair form.
func (g GlueRecord) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal([]interface{}{g.Host, glueAddresses{V4: g.IPv4, V6: g.IPv6}})
	if err != nil {
		return nil, fmt.Errorf("encoding glue record %s: %w", g.Host, err)
	}

	return data, nil
}

// DNSRecord is one resource record in a zone. Numeric fields are strings on
// the wire.
type DNSRecord struct {
	ID      int64  `json:"id,string"       yaml:"id"`
	Name    string `json:"name"            yaml:"name"`
	Type    string `json:"type"            yaml:"type"`
	Content string `json:"content"         yaml:"content"`
	TTL     string `json:"ttl"             yaml:"ttl"`
	Prio    string `json:"prio"            yaml:"prio"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DNSRecordCreateRequest creates a record. Name is the subdomain; empty
// addresses the apex.
type DNSRecordCreateRequest struct {
	Name    string `json:"name,omitempty"  yaml:"name,omitempty"`
	Type    string `json:"type"            yaml:"type"`
	Content string `json:"content"         yaml:"content"`
	TTL     string `json:"ttl,omitempty"   yaml:"ttl,omitempty"`
	Prio    string `json:"prio,omitempty"  yaml:"prio,omitempty"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DNSRecordEditRequest edits a record by id. Empty fields are not sent.
type DNSRecordEditRequest struct {
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Type    string `json:"type,omitempty"    yaml:"type,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	TTL     string `json:"ttl,omitempty"     yaml:"ttl,omitempty"`
	Prio    string `json:"prio,omitempty"    yaml:"prio,omitempty"`
	Notes   string `json:"notes,omitempty"   yaml:"notes,omitempty"`
}

// DNSRecordNameTypeEditRequest edits every record matching a subdomain and
// type.
type DNSRecordNameTypeEditRequest struct {
	Content string `json:"content"         yaml:"content"`
	TTL     string `json:"ttl,omitempty"   yaml:"ttl,omitempty"`
	Prio    string `json:"prio,omitempty"  yaml:"prio,omitempty"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DNSSECRecord is a DS record published at the registry.
type DNSSECRecord struct {
	KeyTag          string `json:"keyTag"                    yaml:"key_tag"`
	Alg             string `json:"alg"                       yaml:"alg"`
	DigestType      string `json:"digestType"                yaml:"digest_type"`
	Digest          string `json:"digest"                    yaml:"digest"`
	MaxSigLife      string `json:"maxSigLife,omitempty"      yaml:"max_sig_life,omitempty"`
	KeyDataFlags    string `json:"keyDataFlags,omitempty"    yaml:"key_data_flags,omitempty"`
	KeyDataProtocol string `json:"keyDataProtocol,omitempty" yaml:"key_data_protocol,omitempty"`
	KeyDataAlgo     string `json:"keyDataAlgo,omitempty"     yaml:"key_data_algo,omitempty"`
	KeyDataPubKey   string `json:"keyDataPubKey,omitempty"   yaml:"key_data_pub_key,omitempty"`
}

// SSLBundle is the free certificate issued for a domain, PEM encoded.
type SSLBundle struct {
	CertificateChain string `json:"certificatechain" yaml:"certificate_chain"`
	PrivateKey       string `json:"privatekey"       yaml:"private_key"`
	PublicKey        string `json:"publickey"        yaml:"public_key"`
}
