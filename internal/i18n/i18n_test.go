// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package i18n

import "testing"

func TestTranslator(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{name: "english key", lang: "en", key: "status_converted", want: "converted"},
		{name: "german key", lang: "de", key: "status_converted", want: "konvertiert"},
		{name: "unknown language falls back to english", lang: "fr", key: "status_skipped", want: "skipped"},
		{name: "unknown key returned as-is", lang: "en", key: "does_not_exist", want: "does_not_exist"},
		{name: "unknown key in german falls back", lang: "de", key: "does_not_exist", want: "does_not_exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.lang).T(tt.key); got != tt.want {
				t.Errorf("New(%q).T(%q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "de" {
		t.Errorf("Languages() = %v, want [en de]", langs)
	}
}

func TestCatalogsAligned(t *testing.T) {
	// Every English key must have a German counterpart and vice versa.
	for key := range catalogs["en"] {
		if _, ok := catalogs["de"][key]; !ok {
			t.Errorf("key %q missing from German catalog", key)
		}
	}
	for key := range catalogs["de"] {
		if _, ok := catalogs["en"][key]; !ok {
			t.Errorf("key %q missing from English catalog", key)
		}
	}
}
