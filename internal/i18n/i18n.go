// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package i18n provides the English/German message catalog for CLI
// output. Lookup falls back to English, and an unknown key comes back
// as the key itself so a missing translation is visible, not fatal.
package i18n

// DefaultLanguage is used when the requested language has no catalog.
const DefaultLanguage = "en"

var catalogs = map[string]map[string]string{
	"en": {
		"status_converted":  "converted",
		"status_skipped":    "skipped",
		"status_failed":     "failed",
		"status_warnings":   "warnings",
		"status_qsos":       "QSOs",
		"summary_converted": "converted",
		"summary_skipped":   "skipped",
		"summary_failed":    "failed",
		"summary_total":     "total",
		"summary_prefix":    "Conversion summary",
		"validate_ok":       "log parsed cleanly",
		"validate_warnings": "log parsed with warnings",
		"no_qsos":           "no QSOs found in file",
		"report_written":    "report written",
		"logbook_stored":    "stored in logbook",
		"no_results":        "No results found.",
	},
	"de": {
		"status_converted":  "konvertiert",
		"status_skipped":    "übersprungen",
		"status_failed":     "fehlgeschlagen",
		"status_warnings":   "Warnungen",
		"status_qsos":       "QSOs",
		"summary_converted": "konvertiert",
		"summary_skipped":   "übersprungen",
		"summary_failed":    "fehlgeschlagen",
		"summary_total":     "gesamt",
		"summary_prefix":    "Konvertierungsübersicht",
		"validate_ok":       "Log fehlerfrei eingelesen",
		"validate_warnings": "Log mit Warnungen eingelesen",
		"no_qsos":           "keine QSOs in der Datei gefunden",
		"report_written":    "Bericht geschrieben",
		"logbook_stored":    "im Logbuch gespeichert",
		"no_results":        "Keine Ergebnisse gefunden.",
	},
}

// Translator resolves message keys for one language.
type Translator struct {
	lang string
}

// New returns a Translator for lang, falling back to English when the
// language has no catalog.
func New(lang string) *Translator {
	if _, ok := catalogs[lang]; !ok {
		lang = DefaultLanguage
	}
	return &Translator{lang: lang}
}

// T resolves a message key. Missing keys fall back to the English
// catalog, then to the key itself.
func (t *Translator) T(key string) string {
	if msg, ok := catalogs[t.lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "de"}
}
