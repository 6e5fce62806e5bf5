package category

import "testing"

func TestFirstMatch(t *testing.T) {
	rules := []Rule{
		{Pattern: "tarm", Category: "digestive"},
		{Pattern: "hormon", Category: "hormonal"},
	}

	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "single_hit", text: "Hormonell ubalanse", want: "hormonal"},
		{name: "substring_not_token", text: "Tarmflora i ubalanse", want: "digestive"},
		{name: "ambiguous_takes_first_rule", text: "tarm og hormon", want: "digestive"},
		{name: "case_insensitive", text: "TARMFLORA", want: "digestive"},
		{name: "no_hit_falls_back", text: "uspesifisert", want: "other"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstMatch(tc.text, rules, "other"); got != tc.want {
				t.Fatalf("FirstMatch(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestLastMatch(t *testing.T) {
	rules := []Rule{
		{Pattern: "tarm", Category: "digestive"},
		{Pattern: "hormon", Category: "hormonal"},
	}

	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "ambiguous_takes_last_rule", text: "tarm og hormon", want: "hormonal"},
		{name: "single_hit", text: "tarmflora", want: "digestive"},
		{name: "no_hit_falls_back", text: "uspesifisert", want: "other"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LastMatch(tc.text, rules, "other"); got != tc.want {
				t.Fatalf("LastMatch(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestPoliciesDivergeOnAmbiguousText(t *testing.T) {
	rules := []Rule{
		{Pattern: "tarm", Category: "digestive"},
		{Pattern: "hormon", Category: "hormonal"},
	}
	text := "tarmflora og hormonbalanse"
	if FirstMatch(text, rules, "") == LastMatch(text, rules, "") {
		t.Fatalf("expected policies to disagree on %q", text)
	}
}

func TestSystemRulesMapScannerCategories(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "Nervesystem", want: SystemNervous},
		{text: "Hormoner", want: SystemHormonal},
		{text: "Fordøyelse", want: SystemDigestive},
		{text: "Sirkulasjon", want: SystemCirculatory},
		{text: "Respirasjon", want: SystemRespiratory},
		{text: "Muskulatur", want: SystemMuscular},
		{text: "Immunforsvar", want: SystemImmune},
		{text: "Noe ukjent", want: SystemOther},
	}
	for _, tc := range cases {
		if got := LastMatch(tc.text, SystemRules, SystemOther); got != tc.want {
			t.Fatalf("LastMatch(%q, SystemRules) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestSystemDisplayName(t *testing.T) {
	if got := SystemDisplayName(SystemDigestive); got != "Fordøyelsessystem" {
		t.Fatalf("display name for %q = %q", SystemDigestive, got)
	}
	if got := SystemDisplayName("ukjent-nøkkel"); got != "ukjent-nøkkel" {
		t.Fatalf("unknown key should echo back, got %q", got)
	}
}
