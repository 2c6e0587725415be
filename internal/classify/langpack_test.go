package classify

import (
	"os"
	"path/filepath"
	"testing"
)

const frenchPack = `language: fr
important_headers:
  - name: conclusion
    pattern: '(?i)^\s*conclusions?\b'
  - name: discussion
    pattern: '(?i)^\s*discussion\b'
reference_headers:
  - '(?i)^\s*r[ée]f[ée]rences\s*$'
substantive_indicators:
  - '(?i)\b(étude|patients?|traitement)\b'
  - '(?i)\b(suivi|mortalité|survie)\b'
`

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLanguagePack(t *testing.T) {
	pack, err := LoadLanguagePack(writePack(t, frenchPack))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if pack.Language != "fr" {
		t.Errorf("language = %q, want fr", pack.Language)
	}
	if len(pack.ImportantHeaders) != 2 || len(pack.ReferenceHeaders) != 1 || len(pack.SubstantiveIndicators) != 2 {
		t.Errorf("unexpected pattern counts: %d/%d/%d", len(pack.ImportantHeaders), len(pack.ReferenceHeaders), len(pack.SubstantiveIndicators))
	}
}

func TestLoadLanguagePack_MissingLanguage(t *testing.T) {
	if _, err := LoadLanguagePack(writePack(t, "reference_headers: ['^x$']")); err == nil {
		t.Fatal("expected an error for a pack without a language field")
	}
}

func TestAddPack_ExtendsClassification(t *testing.T) {
	text := `Conclusion
Le traitement précoce a réduit la mortalité dans tous les groupes de patients, avec un suivi moyen de dix-huit mois et un profil de tolérance satisfaisant.

Références
1. Moreau L, Petit C. Résultats à long terme. Arch Mal Coeur. 2019;112(4):250-258.
2. Blanc S, Girard T, et al. Suivi après intervention. Presse Med. 2020;49(2):104-112.`

	pack, err := LoadLanguagePack(writePack(t, frenchPack))
	if err != nil {
		t.Fatal(err)
	}
	c := New(DefaultConfig())
	if err := c.AddPack(pack); err != nil {
		t.Fatal(err)
	}

	res := c.Classify(text, 1)
	if res.Kind != MixedContent {
		t.Fatalf("expected MixedContent with the French pack loaded, got %s (reasons %v)", res.Kind, res.Reasons)
	}
	if res.ReferenceStart == nil || res.ReferenceStart.Header != "Références" {
		t.Errorf("expected the Références header to be detected, got %+v", res.ReferenceStart)
	}
}

func TestAddPack_RejectsBadPattern(t *testing.T) {
	c := New(DefaultConfig())
	err := c.AddPack(&LanguagePack{
		Language:         "xx",
		ReferenceHeaders: []string{"[unclosed"},
	})
	if err == nil {
		t.Fatal("expected a compile error for an invalid pattern")
	}
}
