package cnst

const (
	// LangEN is the English language code
	LangEN = "en"
	// LangZH is the Chinese language code
	LangZH = "zh"
	// LangDefault is the fallback language
	LangDefault = LangEN

	// XLang is the header/context key carrying the client language preference
	XLang = "X-Lang"
	// CtxKeyTranslator is the gin context key for the request translator
	CtxKeyTranslator = "translator"
)
