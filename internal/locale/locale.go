// Package locale resolves the active language and the small set of
// localized strings the state store needs when it synthesizes data.
package locale

import (
	"errors"
	"fmt"
	"strings"
	gosync "sync"

	"golang.org/x/text/language"
)

// Language is a supported language code as stored in settings.
type Language string

const (
	ZhTW Language = "zh-TW"
	ZhCN Language = "zh-CN"
	En   Language = "en"
)

// Fallback is used when nothing else matches.
const Fallback = ZhTW

var ErrUnsupported = errors.New("locale: unsupported language")

var supported = []Language{ZhTW, ZhCN, En}

var matcher = language.NewMatcher([]language.Tag{
	language.MustParse(string(ZhTW)),
	language.MustParse(string(ZhCN)),
	language.English,
})

// Supported lists the languages with string tables.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

func (l Language) IsSupported() bool {
	_, ok := tables[l]
	return ok
}

// Match maps an arbitrary BCP 47 tag (e.g. "zh-Hant-HK", "en_GB") to the
// closest supported language, or Fallback.
func Match(raw string) Language {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Fallback
	}
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "C" || raw == "POSIX" {
		return Fallback
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return Fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return supported[idx]
}

// Detect picks the language from POSIX locale variables in env
// (KEY=VALUE pairs), in LC_ALL, LC_MESSAGES, LANG order.
func Detect(env []string) Language {
	vals := make(map[string]string, 3)
	for _, e := range env {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		switch k {
		case "LC_ALL", "LC_MESSAGES", "LANG":
			vals[k] = v
		}
	}
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := vals[k]; v != "" {
			return Match(v)
		}
	}
	return Fallback
}

// Bundle holds the active language.
type Bundle struct {
	mu   gosync.RWMutex
	lang Language
}

// NewBundle returns a bundle set to lang, or Fallback if lang is unsupported.
func NewBundle(lang Language) *Bundle {
	if !lang.IsSupported() {
		lang = Fallback
	}
	return &Bundle{lang: lang}
}

// Use switches the active language.
func (b *Bundle) Use(lang Language) error {
	if !lang.IsSupported() {
		return fmt.Errorf("%w: %q", ErrUnsupported, lang)
	}
	b.mu.Lock()
	b.lang = lang
	b.mu.Unlock()
	return nil
}

// Current returns the active language.
func (b *Bundle) Current() Language {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lang
}

func (b *Bundle) table() table {
	return tables[b.Current()]
}

// DefaultItem is a localized seed item.
type DefaultItem struct {
	Title string
	Icon  string
}

// DefaultItems returns the seed items for a fresh checklist.
func (b *Bundle) DefaultItems() []DefaultItem {
	t := b.table()
	return []DefaultItem{
		{Title: t.wallet, Icon: "wallet"},
		{Title: t.keys, Icon: "key"},
		{Title: t.badge, Icon: "badge-account"},
		{Title: t.phone, Icon: "cellphone"},
	}
}

// DefaultChecklistName is the name of the synthesized checklist.
func (b *Bundle) DefaultChecklistName() string { return b.table().checklistName }

// DefaultGroupLabel is the display label of the default group.
func (b *Bundle) DefaultGroupLabel() string { return b.table().groupLabel }

// NotificationDefaults returns the localized reminder title and body.
func (b *Bundle) NotificationDefaults() (title, body string) {
	t := b.table()
	return t.notifyTitle, t.notifyBody
}

// UpgradeHint is shown when a free-tier limit is hit.
func (b *Bundle) UpgradeHint() string { return b.table().upgradeHint }
