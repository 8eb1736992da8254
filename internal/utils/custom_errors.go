package utils

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrRecordNotFound    = errors.New("pr record not found")
	ErrSourceUnavailable = errors.New("activity source unavailable")
	ErrLedgerPersist     = errors.New("ledger persist failed")
	ErrUnknownPRState    = errors.New("unknown pr state")
	ErrRuleInvalid       = errors.New("invalid rule configuration")
)
