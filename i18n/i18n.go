// Package i18n holds the site's active language and translation
// lookup. The Context is an explicit handle passed to its consumers
// rather than ambient global state; it owns persisting the visitor's
// language preference through a Store.
package i18n

import (
	"fmt"
	"log"
	"sync"
)

// Language is one of the site's supported languages.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// DefaultLanguage is used when no valid stored preference exists.
const DefaultLanguage = English

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case English, Arabic:
		return Language(s), true
	}
	return "", false
}

// Direction is the text direction a language renders in.
type Direction string

const (
	DirLTR Direction = "ltr"
	DirRTL Direction = "rtl"
)

// DirOf returns the text direction for a language.
func DirOf(lang Language) Direction {
	if lang == Arabic {
		return DirRTL
	}
	return DirLTR
}

// Store keys for the persisted language preference and the one-time
// selection-prompt flag.
const (
	PreferredLanguageKey = "preferred-language"
	LanguageSelectedKey  = "language-selected"
)

// Context holds the active language for one visitor session.
type Context struct {
	mu    sync.RWMutex
	store Store
	lang  Language
}

// New creates a Context, restoring the language from the store when a
// valid preference is present and falling back to English otherwise.
func New(store Store) *Context {
	lang := DefaultLanguage
	if saved, ok := store.Get(PreferredLanguageKey); ok {
		if parsed, valid := ParseLanguage(saved); valid {
			lang = parsed
		}
	}
	return &Context{store: store, lang: lang}
}

// Language returns the active language.
func (c *Context) Language() Language {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Dir returns the text direction of the active language.
func (c *Context) Dir() Direction {
	return DirOf(c.Language())
}

// T looks up key in the active language's table. Missing keys return
// the key itself so untranslated strings stay visible instead of
// breaking the page.
func (c *Context) T(key string) string {
	c.mu.RLock()
	lang := c.lang
	c.mu.RUnlock()

	if msg, ok := translations[lang][key]; ok {
		return msg
	}
	return key
}

// SetLanguage switches the active language and persists the choice.
// Persistence failures are logged, not returned; an unknown language
// is rejected without changing state.
func (c *Context) SetLanguage(lang Language) error {
	if _, ok := ParseLanguage(string(lang)); !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}

	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()

	if err := c.store.Set(PreferredLanguageKey, string(lang)); err != nil {
		log.Printf("Failed to persist language preference: %v", err)
	}
	return nil
}

// HasSelectedLanguage reports whether the visitor has completed the
// one-time language-selection prompt.
func (c *Context) HasSelectedLanguage() bool {
	v, ok := c.store.Get(LanguageSelectedKey)
	return ok && v == "true"
}

// MarkLanguageSelected records that the selection prompt was answered
// so it is never shown again.
func (c *Context) MarkLanguageSelected() {
	if err := c.store.Set(LanguageSelectedKey, "true"); err != nil {
		log.Printf("Failed to persist language-selected flag: %v", err)
	}
}

// Table returns a copy of the translation table for lang.
func Table(lang Language) map[string]string {
	src := translations[lang]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// MissingKeys returns the keys present in a's table but absent from
// b's. Complete tables yield an empty result in both directions.
func MissingKeys(a, b Language) []string {
	var out []string
	for k := range translations[a] {
		if _, ok := translations[b][k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
