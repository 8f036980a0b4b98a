package domain

import "errors"

// Domain errors.
var (
	ErrStateNotFound      = errors.New("no stored state")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrDuplicateIssueID   = errors.New("duplicate issue id")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrCatalogFormat      = errors.New("unsupported catalog format")
	ErrInvalidLevel       = errors.New("invalid level")
	ErrUnknownLanguage    = errors.New("unknown language")
	ErrUnknownLabel       = errors.New("unknown label")
	ErrPanelEmpty         = errors.New("no saved issues")
	ErrPanelClosed        = errors.New("saved issues panel is closed")
	ErrNotSaved           = errors.New("issue is not saved")
	ErrUnknownBackend     = errors.New("unknown storage backend")
	ErrInvalidRule        = errors.New("invalid collection rule")
	ErrConfigExists       = errors.New("config file already exists")
	ErrCollectionNotFound = errors.New("collection not found")
)
