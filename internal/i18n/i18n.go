package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLang is the fallback language
var DefaultLang = language.English

// SupportedLangs are the languages we support
var SupportedLangs = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(SupportedLangs)

// Operator-facing messages. Protocol output on stdout is never translated.
const (
	MsgUsage       = "Usage: %s [--discover | --check <interface>]\n"
	MsgUsageCheck  = "Usage: %s --check <interface>\n"
	MsgUnknownMode = "Unknown mode: %s\n"
	MsgConfigError = "%s: configuration error: %v\n"
	MsgWriteError  = "%s: %v\n"
)

func init() {
	pt := language.BrazilianPortuguese
	message.SetString(pt, MsgUsage, "Uso: %s [--discover | --check <interface>]\n")
	message.SetString(pt, MsgUsageCheck, "Uso: %s --check <interface>\n")
	message.SetString(pt, MsgUnknownMode, "Modo desconhecido: %s\n")
	message.SetString(pt, MsgConfigError, "%s: erro de configuração: %v\n")
}

// NewPrinter returns a message printer for the given language
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// NewCLIPrinter returns a printer for the system's locale (from env vars)
func NewCLIPrinter() *message.Printer {
	return NewPrinter(LocaleFromEnv(os.Getenv))
}

// LocaleFromEnv resolves the POSIX locale variables in precedence order
// (LC_ALL, LC_MESSAGES, LANG) to a supported language.
func LocaleFromEnv(getenv func(string) string) language.Tag {
	var lang string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang = getenv(key); lang != "" {
			break
		}
	}

	// Strip encoding and modifier: pt_BR.UTF-8@euro -> pt_BR
	if i := strings.IndexAny(lang, ".@"); i != -1 {
		lang = lang[:i]
	}
	if lang == "" || lang == "C" || lang == "POSIX" {
		return DefaultLang
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return DefaultLang
	}
	tag, _, _ = matcher.Match(tag)
	return tag
}
