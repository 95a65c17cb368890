package geo

import "testing"

func TestNormalizeArabicStripsDiacritics(t *testing.T) {
	inputs := []string{
		"عَمَّان",
		"دِمَشق",
		"القَاهِرَة",
		"بَيْرُوت",
	}

	for _, in := range inputs {
		got := Normalize(in)
		for _, r := range got {
			if isArabicDiacritic(r) {
				t.Errorf("Normalize(%q) = %q still contains diacritic %U", in, got, r)
			}
		}
	}
}

func TestNormalizeArabicLetterForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"عَمَّان", "عمان"},
		{"إربد", "اربد"},
		{"أبها", "ابها"},
		{"القاهرة", "القاهره"},
		{"مصطفى", "مصطفي"},
		{"رؤية", "رويه"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLatin(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paris", "paris"},
		{"São Paulo", "sao paulo"},
		{"Wrocław", "wrocław"}, // ł is a standalone letter, not a combining mark
		{"Málaga", "malaga"},
		{"  New    York  ", "new york"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	if Normalize("Paris") != Normalize("PARIS") || Normalize("PARIS") != Normalize("paris") {
		t.Errorf("Normalize is not case-insensitive for Latin input: %q %q %q",
			Normalize("Paris"), Normalize("PARIS"), Normalize("paris"))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"عَمَّان",
		"في عمان",
		"عمان، الأردن",
		"Paris",
		"São Paulo",
		"  Tokyo  Japan ",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestContainsArabic(t *testing.T) {
	if !ContainsArabic("عمان") {
		t.Error("expected Arabic to be detected in عمان")
	}
	if ContainsArabic("Amman") {
		t.Error("did not expect Arabic to be detected in Amman")
	}
	if !ContainsArabic("city عمان") {
		t.Error("expected Arabic to be detected in mixed input")
	}
}
