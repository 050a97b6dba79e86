package i18n

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocaleFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unset", nil, "en"},
		{"posix", map[string]string{"LANG": "C"}, "en"},
		{"c utf8", map[string]string{"LANG": "C.UTF-8"}, "en"},
		{"brazil", map[string]string{"LANG": "pt_BR.UTF-8"}, "pt"},
		{"lc_all wins", map[string]string{"LC_ALL": "en_US.UTF-8", "LANG": "pt_BR.UTF-8"}, "en"},
		{"lc_messages before lang", map[string]string{"LC_MESSAGES": "pt_BR", "LANG": "en_US"}, "pt"},
		{"garbage", map[string]string{"LANG": "!!"}, "en"},
		{"unsupported", map[string]string{"LANG": "fr_FR.UTF-8"}, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := LocaleFromEnv(func(k string) string { return tt.env[k] })
			base, _ := tag.Base()
			assert.Equal(t, tt.want, base.String())
		})
	}
}

func TestUsageTranslations(t *testing.T) {
	var en, pt bytes.Buffer
	NewPrinter(language.English).Fprintf(&en, MsgUsage, "linkprobe")
	NewPrinter(language.BrazilianPortuguese).Fprintf(&pt, MsgUsage, "linkprobe")

	assert.Equal(t, "Usage: linkprobe [--discover | --check <interface>]\n", en.String())
	assert.Equal(t, "Uso: linkprobe [--discover | --check <interface>]\n", pt.String())
}
