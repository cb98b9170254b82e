package scenes

import(
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	tmpl, ok := Get("studio-white")
	if !ok {
		t.Fatal("studio-white missing")
	}
	if tmpl.Category != Studio {
		t.Errorf("category = %s, want studio", tmpl.Category)
	}
	if _, ok := Get("no-such-scene"); ok {
		t.Error("unknown id found")
	}
}

func TestAllSortedByPopularity(t *testing.T) {
	all := All()
	if len(all) < 10 {
		t.Fatalf("only %d templates", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Popularity > all[i-1].Popularity {
			t.Fatalf("%s (%d) sorted after %s (%d)",
				all[i].ID, all[i].Popularity, all[i-1].ID, all[i-1].Popularity)
		}
		if all[i].Popularity == all[i-1].Popularity && all[i].ID < all[i-1].ID {
			t.Fatalf("popularity tie %s / %s not broken by id", all[i-1].ID, all[i].ID)
		}
	}
	if all[0].ID != "studio-white" {
		t.Errorf("most popular = %s, want studio-white", all[0].ID)
	}
}

func TestByCategory(t *testing.T) {
	for _, c := range Categories() {
		for _, tmpl := range ByCategory(c) {
			if tmpl.Category != c {
				t.Errorf("%s leaked into category %s", tmpl.ID, c)
			}
		}
	}
	if len(ByCategory(Studio)) == 0 {
		t.Error("no studio templates")
	}
}

func TestSearch(t *testing.T) {
	hits := Search("marble")
	if len(hits) == 0 {
		t.Fatal("no hits for marble")
	}
	found := false
	for _, tmpl := range hits {
		if tmpl.ID == "premium-marble" {
			found = true
		}
	}
	if !found {
		t.Error("premium-marble not matched by its own name")
	}

	// Tag-only match: nothing named "hygge", one template tagged it.
	if hits := Search("hygge"); len(hits) != 1 || hits[0].ID != "seasonal-winter" {
		t.Errorf("hygge hits = %v, want just seasonal-winter", hits)
	}

	if hits := Search("zzzzz"); len(hits) != 0 {
		t.Errorf("nonsense query matched %d templates", len(hits))
	}
}

func TestBuildPrompt(t *testing.T) {
	base, _ := Get("studio-white")

	got := BuildPrompt("studio-white", Customizations{})
	if got != base.Prompt {
		t.Errorf("empty customizations changed the prompt")
	}

	got = BuildPrompt("studio-white", Customizations{
		Color:    "sage green",
		Surface:  "marble",
		Lighting: "soft",
		Angle:    "45-degree",
	})
	for _, want := range []string{
		", sage green color scheme",
		", marble surface",
		", soft lighting",
		", 45-degree camera angle",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, base.Prompt) {
		t.Error("customizations replaced the base prompt instead of appending")
	}

	if got := BuildPrompt("no-such-scene", Customizations{}); got != "" {
		t.Errorf("unknown id built %q, want empty", got)
	}
}
