package logx

const (
	FieldAppName          = "app-name"
	FieldAppVersion       = "app-version"
	FieldCheckMode        = "check-mode"
	FieldDictionarySource = "dictionary-source"
	FieldDurationMs       = "duration-ms"
	FieldError            = "error"
	FieldHTTPMethod       = "http-method"
	FieldHTTPRequest      = "http-request"
	FieldHTTPResponse     = "http-response"
	FieldIP               = "ip"
	FieldRating           = "rating"
	FieldRequestBody      = "request-body"
	FieldRequestID        = "request-id"
	FieldResponseBody     = "response-body"
	FieldResponseHeaders  = "response-headers"
	FieldResponseStatus   = "response-status"
	FieldStack            = "stack"
	FieldTaskID           = "task-id"
	FieldTaskType         = "task-type"
	FieldTraceID          = "trace-id"
	FieldURL              = "url"
	FieldWords            = "words"
)
