package circuit

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// ErrUnknownLang is returned by ParseLang for unsupported languages.
var ErrUnknownLang = errors.New("circuit: unknown language")

// Lang selects the language of feedback messages.
type Lang string

const (
	// LangFR is French, the language of the lesson UI and the default.
	LangFR Lang = "fr"
	// LangEN is English.
	LangEN Lang = "en"
)

var (
	supported = []language.Tag{language.French, language.English}
	matcher   = language.NewMatcher(supported)
)

// ParseLang accepts a BCP 47 tag or an Accept-Language list and picks the
// closest supported language ("fr-CA" → fr, "en-GB,en;q=0.8" → en).
// Input that names no supported language is an error.
func ParseLang(s string) (Lang, error) {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownLang, s)
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnknownLang, s)
	}
	base, _ := supported[idx].Base()

	return Lang(base.String()), nil
}

var catalog = map[language.Tag][]*i18n.Message{
	language.French: {
		{ID: ReasonMissingComponents.String(), Other: "Il manque des composants importants (pile, lampe ou interrupteur)."},
		{ID: ReasonShortCircuit.String(), Other: "Attention, un composant court-circuité a été détecté ! ({{.Component}})"},
		{ID: ReasonLoopNotClosed.String(), Other: "Le circuit n'est pas correctement fermé ou un composant n'est pas relié en boucle."},
	},
	language.English: {
		{ID: ReasonMissingComponents.String(), Other: "Some important components are missing (battery, lamp or switch)."},
		{ID: ReasonShortCircuit.String(), Other: "Warning, a short-circuited component was detected! ({{.Component}})"},
		{ID: ReasonLoopNotClosed.String(), Other: "The circuit is not properly closed or a component is not connected in the loop."},
	},
}

// bundle is read-only after init; Localizers built from it are cheap.
var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.French)
	for tag, msgs := range catalog {
		if err := b.AddMessages(tag, msgs...); err != nil {
			panic(fmt.Sprintf("circuit: message catalog %s: %v", tag, err))
		}
	}

	return b
}

// Message returns the learner-facing text for r in lang, falling back to
// French for unknown languages. component fills the short-circuit message.
// ReasonNone yields "".
func (r Reason) Message(lang Lang, component string) string {
	if r == ReasonNone {
		return ""
	}
	loc := i18n.NewLocalizer(bundle, string(lang), string(LangFR))
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    r.String(),
		TemplateData: map[string]string{"Component": component},
	})
	if err != nil {
		return ""
	}

	return msg
}
