package logx

const (
	FieldAppName      = "app-name"
	FieldAppVersion   = "app-version"
	FieldDurationMs   = "duration-ms"
	FieldError        = "error"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldOutcome      = "outcome"
	FieldRank         = "rank"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldTraceID      = "trace-id"
	FieldURL          = "url"
	FieldUsername     = "username"
)
