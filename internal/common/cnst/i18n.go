package cnst

const (
	// LangVI is the Vietnamese language code
	LangVI = "vi"
	// LangEN is the English language code
	LangEN = "en"
	// LangDefault is the language used when a request names none
	LangDefault = LangVI
)

const (
	// XLang is the header and gin context key carrying the request language
	XLang = "X-Lang"
	// XRequestID is the header and gin context key carrying the request id
	XRequestID = "X-Request-ID"
	// CtxKeyLogger is the gin context key of the request-scoped zap logger
	CtxKeyLogger = "logger"
	// CtxKeyClaims is the gin context key of the verified JWT claims
	CtxKeyClaims = "claims"
)
