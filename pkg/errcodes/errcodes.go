package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidPassword          failure.ErrorCode = "InvalidPassword"
	UnsupportedContentType   failure.ErrorCode = "UnsupportedContentType"
	DictionaryUnavailable    failure.ErrorCode = "DictionaryUnavailable"
	InvalidDictionarySource  failure.ErrorCode = "InvalidDictionarySource"
	InvalidImportTaskPayload failure.ErrorCode = "InvalidImportTaskPayload"
)
