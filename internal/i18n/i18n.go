package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocalePT = "pt-BR"
	LocaleEN = "en-US"

	// DefaultLocale 未指定语言时使用
	DefaultLocale = LocalePT
)

var supportedLocales = []string{LocalePT, LocaleEN}

var matcher = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
})

var messages = map[string]map[string]string{
	LocalePT: {
		"error.method_not_allowed": "Método não permitido",
		"error.post_id_required":   "Parâmetro id obrigatório",
		"error.post_not_found":     "Post não encontrado",
		"error.not_found":          "Recurso não encontrado",
		"error.internal":           "Erro interno do servidor",
	},
	LocaleEN: {
		"error.method_not_allowed": "Method not allowed",
		"error.post_id_required":   "Parameter id is required",
		"error.post_not_found":     "Post not found",
		"error.not_found":          "Resource not found",
		"error.internal":           "Internal server error",
	},
}

// ResolveLocale 从请求中解析语言，优先 lang 查询参数，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if lang := NormalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	return MatchAcceptLanguage(c.GetHeader("Accept-Language"))
}

// MatchAcceptLanguage 按 Accept-Language 匹配支持的语言
func MatchAcceptLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[index]
}

// NormalizeLocale 归一化语言代码，不支持时返回空字符串
func NormalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, locale := range supportedLocales {
		if strings.EqualFold(raw, locale) {
			return locale
		}
	}
	switch strings.ToLower(strings.SplitN(strings.ReplaceAll(raw, "_", "-"), "-", 2)[0]) {
	case "pt":
		return LocalePT
	case "en":
		return LocaleEN
	}
	return ""
}

// T 翻译消息，缺失时回退默认语言，仍缺失则返回 key
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}
