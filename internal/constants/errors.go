package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownVendor       = errors.New("unknown vendor, expected 'namecom' or 'porkbun'")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrCredentialsNotFound = errors.New("credentials not found, run 'registrar auth login' or set them in the config file")
	ErrNotATerminal        = errors.New("stdin is not a terminal, pass secrets via flags or environment")
)

// Validation errors.
var (
	ErrInvalidRecordID   = errors.New("record ID must be a positive integer")
	ErrNoNameservers     = errors.New("at least one nameserver is required")
	ErrInvalidOutputMode = errors.New("invalid output format, expected table, json or yaml")
)
