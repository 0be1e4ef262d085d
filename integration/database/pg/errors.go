package pg

import "errors"

var (
	ErrEmptyConnectionString = errors.New("pg: empty connection string")
	ErrFailedToParseConfig   = errors.New("pg: failed to parse connection string")
	ErrFailedToConnect       = errors.New("pg: failed to connect")
	ErrHealthcheckFailed     = errors.New("pg: healthcheck failed")
)
