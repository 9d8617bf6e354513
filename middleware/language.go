package middleware

import (
	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/i18n"
)

const (
	languageKey    = "lang"
	languageCookie = "lang"
)

// Language resolves the response language from ?lang=, then the lang
// cookie, then Accept-Language, and falls back to def
func Language(def i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := i18n.Parse(c.Query("lang"))
		if !ok {
			if cookie, err := c.Cookie(languageCookie); err == nil {
				lang, ok = i18n.Parse(cookie)
			}
		}
		if !ok {
			lang = i18n.Negotiate(c.GetHeader("Accept-Language"), def)
		}

		c.Set(languageKey, lang)
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

// LanguageFrom returns the language chosen for the request, English when
// the Language middleware did not run
func LanguageFrom(c *gin.Context) i18n.Language {
	if value, exists := c.Get(languageKey); exists {
		if lang, ok := value.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.English
}
