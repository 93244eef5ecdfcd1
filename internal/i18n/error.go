package i18n

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorCode is the HTTP status an error maps to
type ErrorCode int

const (
	ErrorBadRequest     ErrorCode = http.StatusBadRequest
	ErrorUnauthorized   ErrorCode = http.StatusUnauthorized
	ErrorForbidden      ErrorCode = http.StatusForbidden
	ErrorNotFound       ErrorCode = http.StatusNotFound
	ErrorConflict       ErrorCode = http.StatusConflict
	ErrorInternalServer ErrorCode = http.StatusInternalServerError
)

// I18nError is an error whose text is looked up by message ID
type I18nError struct {
	MessageID string
	Data      map[string]any
}

// Error renders the message in the default language. Without a translator the
// message ID is returned with template parameters substituted.
func (e *I18nError) Error() string {
	if t := GetTranslator(); t != nil {
		if msg := t.Translate(e.MessageID, DefaultLanguage(), e.Data); msg != e.MessageID {
			return msg
		}
	}
	msg := e.MessageID
	for k, v := range e.Data {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{{.%s}}", k), fmt.Sprint(v))
	}
	return msg
}

// TranslateByContext renders the message in the request's language
func (e *I18nError) TranslateByContext(c *gin.Context) string {
	if t := GetTranslator(); t != nil {
		if msg := t.Translate(e.MessageID, contextLang(c), e.Data); msg != e.MessageID {
			return msg
		}
	}
	return e.Error()
}

// ErrorWithCode is a predefined API error. The With* methods return copies so
// the package-level values are never mutated.
type ErrorWithCode struct {
	*I18nError
	Code ErrorCode
	// Detail is extra context shown to the caller as the "error" field
	Detail string
}

// NewErrorWithCode creates a new error with a code
func NewErrorWithCode(messageID string, code ErrorCode) *ErrorWithCode {
	return &ErrorWithCode{
		I18nError: &I18nError{MessageID: messageID},
		Code:      code,
	}
}

func (e *ErrorWithCode) clone() *ErrorWithCode {
	return &ErrorWithCode{
		I18nError: &I18nError{MessageID: e.MessageID, Data: maps.Clone(e.Data)},
		Code:      e.Code,
		Detail:    e.Detail,
	}
}

// WithParam returns a copy carrying one more template parameter
func (e *ErrorWithCode) WithParam(key string, value any) *ErrorWithCode {
	n := e.clone()
	if n.Data == nil {
		n.Data = make(map[string]any)
	}
	n.Data[key] = value
	return n
}

// WithDetail returns a copy carrying a caller-visible detail string
func (e *ErrorWithCode) WithDetail(detail string) *ErrorWithCode {
	n := e.clone()
	n.Detail = detail
	return n
}

// GetCode returns the error code
func (e *ErrorWithCode) GetCode() ErrorCode {
	return e.Code
}

// Is matches any ErrorWithCode sharing the message ID, so copies made by
// WithParam and WithDetail still satisfy errors.Is against the predefined value.
func (e *ErrorWithCode) Is(target error) bool {
	var t *ErrorWithCode
	if !errors.As(target, &t) {
		return false
	}
	return t.MessageID == e.MessageID
}

// AsErrorWithCode extracts an ErrorWithCode from an error chain
func AsErrorWithCode(err error) (*ErrorWithCode, bool) {
	var e *ErrorWithCode
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// TranslateError translates an error using the context's language preference
func TranslateError(c *gin.Context, err error) string {
	if err == nil {
		return ""
	}
	if e, ok := AsErrorWithCode(err); ok {
		return e.TranslateByContext(c)
	}
	var ie *I18nError
	if errors.As(err, &ie) {
		return ie.TranslateByContext(c)
	}
	return err.Error()
}
