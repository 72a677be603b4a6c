// Package i18n resolves locales and renders localized labels and
// error messages for surfaces built on top of the shootout engine.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// errorMessages maps locale -> error code -> message template. The
// per-locale message files fill it in during init.
var errorMessages = map[string]map[string]string{}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Resolve matches a locale string such as "pt-BR" to a supported tag,
// falling back to the default.
func Resolve(locale string) language.Tag {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return Default()
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// FormatError renders a localized human message for err. Unknown
// codes fall back to the default locale, then to the code itself.
func FormatError(tag language.Tag, err error) string {
	code := string(apperrors.GetCode(err))

	tmpl, ok := localeMessages(tag)[code]
	if !ok {
		tmpl, ok = localeMessages(Default())[code]
	}
	if !ok {
		return code
	}
	return renderTemplate(tmpl, apperrors.GetMetadata(err))
}

func localeMessages(tag language.Tag) map[string]string {
	if messages, ok := errorMessages[tag.String()]; ok {
		return messages
	}
	return errorMessages[Default().String()]
}

// renderTemplate always executes, even with empty metadata, so
// template variables without metadata render as empty strings.
func renderTemplate(tmpl string, metadata map[string]string) string {
	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
