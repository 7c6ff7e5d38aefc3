package namecom

// Hello is the response of the connectivity check.
type Hello struct {
	Motd       string `json:"motd"       yaml:"motd"`
	ServerName string `json:"serverName" yaml:"server_name"`
	ServerTime string `json:"serverTime" yaml:"server_time"`
	Username   string `json:"username"   yaml:"username"`
}

// Contact is one WHOIS contact of a domain.
type Contact struct {
	FirstName   string `json:"firstName,omitempty"   yaml:"first_name,omitempty"`
	LastName    string `json:"lastName,omitempty"    yaml:"last_name,omitempty"`
	CompanyName string `json:"companyName,omitempty" yaml:"company_name,omitempty"`
	Address1    string `json:"address1,omitempty"    yaml:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"    yaml:"address2,omitempty"`
	City        string `json:"city,omitempty"        yaml:"city,omitempty"`
	State       string `json:"state,omitempty"       yaml:"state,omitempty"`
	Zip         string `json:"zip,omitempty"         yaml:"zip,omitempty"`
	Country     string `json:"country,omitempty"     yaml:"country,omitempty"`
	Phone       string `json:"phone,omitempty"       yaml:"phone,omitempty"`
	Fax         string `json:"fax,omitempty"         yaml:"fax,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
}

// Contacts groups the four contact roles of a domain.
type Contacts struct {
	Registrant Contact `json:"registrant" yaml:"registrant"`
	Admin      Contact `json:"admin"      yaml:"admin"`
	Tech       Contact `json:"tech"       yaml:"tech"`
	Billing    Contact `json:"billing"    yaml:"billing"`
}

// Domain is a domain registered in the account.
type Domain struct {
	DomainName       string   `json:"domainName"             yaml:"domain_name"`
	CreateDate       string   `json:"createDate"             yaml:"create_date"`
	ExpireDate       string   `json:"expireDate"             yaml:"expire_date"`
	AutorenewEnabled bool     `json:"autorenewEnabled"       yaml:"autorenew_enabled"`
	Locked           bool     `json:"locked"                 yaml:"locked"`
	PrivacyEnabled   bool     `json:"privacyEnabled"         yaml:"privacy_enabled"`
	Contacts         Contacts `json:"contacts"               yaml:"contacts"`
	Nameservers      []string `json:"nameservers"            yaml:"nameservers"`
	RenewalPrice     *float64 `json:"renewalPrice,omitempty" yaml:"renewal_price,omitempty"`
}

// AvailabilityResult is the availability of one domain name.
type AvailabilityResult struct {
	DomainName    string  `json:"domainName"    yaml:"domain_name"`
	Purchasable   bool    `json:"purchasable"   yaml:"purchasable"`
	Premium       bool    `json:"premium"       yaml:"premium"`
	PurchasePrice float64 `json:"purchasePrice" yaml:"purchase_price"`
	PurchaseType  string  `json:"purchaseType"  yaml:"purchase_type"`
	RenewalPrice  float64 `json:"renewalPrice"  yaml:"renewal_price"`
}

// CreateDomainResponse is the outcome of a registration.
type CreateDomainResponse struct {
	Domain    Domain  `json:"domain"    yaml:"domain"`
	Order     int     `json:"order"     yaml:"order"`
	TotalPaid float64 `json:"totalPaid" yaml:"total_paid"`
}

// UpdateDomainRequest changes the flags of a domain. Nil fields are left
// untouched.
type UpdateDomainRequest struct {
	AutorenewEnabled *bool `json:"autorenewEnabled,omitempty" yaml:"autorenew_enabled,omitempty"`
	Locked           *bool `json:"locked,omitempty"           yaml:"locked,omitempty"`
	PrivacyEnabled   *bool `json:"privacyEnabled,omitempty"   yaml:"privacy_enabled,omitempty"`
}

// DNSRecord is one resource record in a zone.
type DNSRecord struct {
	ID         int    `json:"id"                 yaml:"id"`
	DomainName string `json:"domainName"         yaml:"domain_name"`
	Host       string `json:"host,omitempty"     yaml:"host,omitempty"`
	FQDN       string `json:"fqdn"               yaml:"fqdn"`
	Type       string `json:"type"               yaml:"type"`
	Answer     string `json:"answer"             yaml:"answer"`
	TTL        int    `json:"ttl"                yaml:"ttl"`
	Priority   int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// DNSRecordRequest creates or replaces a record. An empty Host addresses the
// zone apex.
type DNSRecordRequest struct {
	Host     string `json:"host,omitempty"     yaml:"host,omitempty"`
	Type     string `json:"type"               yaml:"type"`
	Answer   string `json:"answer"             yaml:"answer"`
	TTL      int    `json:"ttl"                yaml:"ttl"`
	Priority int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// DNSSECRecord is a DS record published at the registry.
type DNSSECRecord struct {
	DomainName string `json:"domainName" yaml:"domain_name"`
	KeyTag     int    `json:"keyTag"     yaml:"key_tag"`
	Algorithm  int    `json:"algorithm"  yaml:"algorithm"`
	DigestType int    `json:"digestType" yaml:"digest_type"`
	Digest     string `json:"digest"     yaml:"digest"`
}

// DNSSECCreateRequest publishes a DS record.
type DNSSECCreateRequest struct {
	KeyTag     int    `json:"keyTag"     yaml:"key_tag"`
	Algorithm  int    `json:"algorithm"  yaml:"algorithm"`
	DigestType int    `json:"digestType" yaml:"digest_type"`
	Digest     string `json:"digest"     yaml:"digest"`
}

// URLForwarding redirects a host of the domain. Type is one of "redirect",
// "masked" or "302".
type URLForwarding struct {
	DomainName string `json:"domainName"      yaml:"domain_name"`
	Host       string `json:"host"            yaml:"host"`
	ForwardsTo string `json:"forwardsTo"      yaml:"forwards_to"`
	Type       string `json:"type"            yaml:"type"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Meta       string `json:"meta,omitempty"  yaml:"meta,omitempty"`
}

// URLForwardingCreateRequest creates a forwarding for Host.
type URLForwardingCreateRequest struct {
	Host       string `json:"host"            yaml:"host"`
	ForwardsTo string `json:"forwardsTo"      yaml:"forwards_to"`
	Type       string `json:"type"            yaml:"type"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Meta       string `json:"meta,omitempty"  yaml:"meta,omitempty"`
}

// URLForwardingUpdateRequest replaces the target of an existing forwarding.
type URLForwardingUpdateRequest struct {
	ForwardsTo string `json:"forwardsTo"      yaml:"forwards_to"`
	Type       string `json:"type"            yaml:"type"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Meta       string `json:"meta,omitempty"  yaml:"meta,omitempty"`
}

// VanityNameserver is a nameserver host under the domain with its glue
// addresses.
type VanityNameserver struct {
	DomainName string   `json:"domainName" yaml:"domain_name"`
	Hostname   string   `json:"hostname"   yaml:"hostname"`
	IPs        []string `json:"ips"        yaml:"ips"`
}

// VanityNameserverCreateRequest registers a vanity nameserver.
type VanityNameserverCreateRequest struct {
	Hostname string   `json:"hostname" yaml:"hostname"`
	IPs      []string `json:"ips"      yaml:"ips"`
}
