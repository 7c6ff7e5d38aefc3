package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// ConfigDirName is the CLI configuration directory under $HOME.
	ConfigDirName = ".registrar"

	// ConfigFileName is the CLI configuration file name.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes every CLI environment variable.
	EnvPrefix = "REGISTRAR"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as connectivity checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless a caller opts in.
const (
	// DefaultRetryMax is the number of retries performed when none is configured.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination.
const (
	// FirstPage is the initial cursor for page-numbered listings.
	FirstPage = 1

	// FirstOffset is the initial cursor for offset listings.
	FirstOffset = 0

	// DefaultMaxPages bounds a single sweep against a misbehaving server.
	DefaultMaxPages = 10000

	// NameComMaxPageSize is the largest perPage value Name.com accepts.
	NameComMaxPageSize = 1000

	// PorkbunListChunk is the number of domains Porkbun returns per listAll call.
	PorkbunListChunk = 1000
)

// HTTP headers and content types.
const (
	// HeaderContentType is the Content-Type header name.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the Accept header name.
	HeaderAccept = "Accept"

	// HeaderUserAgent is the User-Agent header name.
	HeaderUserAgent = "User-Agent"

	// ContentTypeJSON is the JSON media type.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "registrar-client/1.0"
)

// Name.com endpoints.
const (
	// NameComProductionHost is the production API host.
	NameComProductionHost = "https://api.name.com"

	// NameComDevelopmentHost is the sandbox API host.
	NameComDevelopmentHost = "https://api.dev.name.com"
)

// Porkbun endpoints.
const (
	// PorkbunBaseURL is the v3 JSON API root.
	PorkbunBaseURL = "https://api.porkbun.com/api/json/v3"
)

// Envelope values used by Porkbun responses.
const (
	// EnvelopeStatusSuccess marks a successful envelope.
	EnvelopeStatusSuccess = "SUCCESS"

	// EnvelopeStatusError marks a rejected request.
	EnvelopeStatusError = "ERROR"

	// UnknownAPIErrorMessage is used when an ERROR envelope carries no message.
	UnknownAPIErrorMessage = "Unknown API error"
)

// Porkbun flag values.
const (
	// Yes is the affirmative string flag used by Porkbun.
	Yes = "yes"

	// No is the negative string flag used by Porkbun.
	No = "no"
)

// Format constants.
const (
	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatTable represents table output format.
	FormatTable = "table"
)

// Vendor identifiers used by the CLI and credential store.
const (
	// VendorNameCom identifies Name.com.
	VendorNameCom = "namecom"

	// VendorPorkbun identifies Porkbun.
	VendorPorkbun = "porkbun"
)

// Display constants.
const (
	// NotAvailable marks an absent value in tables.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"
)

// DNS defaults.
const (
	// DefaultRecordTTL is the TTL the CLI uses when none is given.
	DefaultRecordTTL = 300
)

// Teardown queue sizing.
const (
	// TeardownQueueSize is the default capacity of the cleanup queue.
	TeardownQueueSize = 128
)
