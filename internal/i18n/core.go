package i18n

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu          sync.RWMutex
	translator  *I18n
	defaultLang = cnst.LangDefault
	supported   = []language.Tag{language.Vietnamese, language.English}
	matcher     = language.NewMatcher(supported)
)

// SetDefaultLanguage sets the language used when a request names none
func SetDefaultLanguage(lang string) {
	code, ok := normalize(lang)
	if !ok {
		code = cnst.LangDefault
	}
	mu.Lock()
	defer mu.Unlock()
	defaultLang = code
}

// DefaultLanguage returns the configured fallback language
func DefaultLanguage() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLang
}

// InitTranslator loads every TOML file under translationsPath into the global translator
func InitTranslator(translationsPath string) error {
	t := NewI18n(language.Make(DefaultLanguage()))
	if err := t.LoadTranslations(translationsPath); err != nil {
		return err
	}
	mu.Lock()
	translator = t
	mu.Unlock()
	return nil
}

// GetTranslator returns the global translator, nil before InitTranslator succeeds
func GetTranslator() *I18n {
	mu.RLock()
	defer mu.RUnlock()
	return translator
}

// I18n wraps a go-i18n bundle
type I18n struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

func NewI18n(defaultLang language.Tag) *I18n {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &I18n{bundle: bundle, defaultLang: defaultLang}
}

// LoadTranslations loads the *.toml message files of a directory. The file
// name (vi.toml, en.toml) selects the language.
func (i *I18n) LoadTranslations(translationsDir string) error {
	files, err := os.ReadDir(translationsDir)
	if err != nil {
		return fmt.Errorf("failed to read translations directory: %w", err)
	}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".toml") {
			continue
		}
		if _, err := i.bundle.LoadMessageFile(filepath.Join(translationsDir, file.Name())); err != nil {
			return fmt.Errorf("failed to load %s: %w", file.Name(), err)
		}
	}
	return nil
}

// Translate returns the localized message, or msgID when no translation exists
func (i *I18n) Translate(msgID string, lang string, templateData map[string]any) string {
	localizer := i18n.NewLocalizer(i.bundle, lang, i.defaultLang.String())
	lc := &i18n.LocalizeConfig{MessageID: msgID}
	if len(templateData) > 0 {
		lc.TemplateData = templateData
	}
	msg, err := localizer.Localize(lc)
	if err != nil {
		return msgID
	}
	return msg
}

// LanguageFromRequest picks the response language from X-Lang, then Accept-Language
func LanguageFromRequest(r *http.Request) string {
	if lang := r.Header.Get(cnst.XLang); lang != "" {
		return NormalizeLang(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return langCode(supported[idx])
			}
		}
	}
	return DefaultLanguage()
}

// NormalizeLang maps a language tag to a supported code, falling back to the default
func NormalizeLang(lang string) string {
	if code, ok := normalize(lang); ok {
		return code
	}
	return DefaultLanguage()
}

func normalize(lang string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			return langCode(s), true
		}
	}
	return "", false
}

func langCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

func contextLang(c *gin.Context) string {
	if v, ok := c.Get(cnst.XLang); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return DefaultLanguage()
}

// TranslateMessage translates a message ID using the context's language preference
func TranslateMessage(c *gin.Context, msgID string, data map[string]any) string {
	if t := GetTranslator(); t != nil {
		return t.Translate(msgID, contextLang(c), data)
	}
	return msgID
}

// Render translates msgID in the default language. It is used for text that
// outlives the request, such as stored notifications.
func Render(msgID string, data map[string]any) string {
	if t := GetTranslator(); t != nil {
		return t.Translate(msgID, DefaultLanguage(), data)
	}
	return msgID
}
