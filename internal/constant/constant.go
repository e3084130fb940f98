package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 5 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)
