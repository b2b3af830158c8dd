package main

import (
	"strings"
	"testing"
)

func TestMappingsCommandSuggestsByKeyword(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeManifest(t, "Ensalada Tropical Fresca", "Ceviche")
	env.writeImages(t, "ceviche.jpg", "ensalada_verde.jpg")

	out, _, err := runCLI(t, env.configPath, "mappings")
	if err != nil {
		t.Fatalf("mappings: %v", err)
	}

	requireContains(t, out, "[mappings]")
	requireContains(t, out, `"Ensalada Tropical Fresca" = "ensalada_verde.jpg"`)
	if strings.Contains(out, `"Ceviche" =`) {
		t.Fatalf("matched recipe should not appear in suggestions:\n%s", out)
	}
}

func TestMappingsCommandCleanManifest(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeManifest(t, "Ceviche")
	env.writeImages(t, "ceviche.jpg")

	out, _, err := runCLI(t, env.configPath, "mappings")
	if err != nil {
		t.Fatalf("mappings: %v", err)
	}
	requireContains(t, out, "nothing to map")
}

func TestSuggestCandidatesRanksByOverlap(t *testing.T) {
	candidates := []string{"sopa_verde.jpg", "ensalada_tropical.jpg", "ensalada_verde.jpg"}
	got := suggestCandidates("Ensalada Tropical Grande", candidates)
	if len(got) == 0 || got[0] != "ensalada_tropical.jpg" {
		t.Fatalf("suggestions = %v, want ensalada_tropical.jpg first", got)
	}
	for _, name := range got {
		if name == "sopa_verde.jpg" {
			t.Fatalf("zero-overlap candidate suggested: %v", got)
		}
	}
}
