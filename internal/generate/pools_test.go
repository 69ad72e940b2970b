package generate

import (
	"testing"

	"github.com/aberg/wordbergler/internal/model"
)

func TestBuildPools_Order(t *testing.T) {
	pools := BuildPools(&model.Profile{Names: []string{"John Smith"}})

	wantOrder := []string{
		PoolLastNames, PoolInitialLast, PoolBrandTitle,
		PoolFullNames, PoolExtraBases, PoolDoubleWords,
	}

	if len(pools) != len(wantOrder) {
		t.Fatalf("got %d pools, want %d", len(pools), len(wantOrder))
	}
	for i, want := range wantOrder {
		if pools[i].Name != want {
			t.Errorf("pool[%d] = %q, want %q", i, pools[i].Name, want)
		}
	}
}

func TestBuildPools_LastNames(t *testing.T) {
	pools := BuildPools(&model.Profile{Names: []string{"John Smith"}})

	last := poolByName(t, pools, PoolLastNames)
	for _, want := range []string{"smith", "Smith", "SMITH"} {
		if !containsWord(last.Bases, want) {
			t.Errorf("last-name pool missing %q: %v", want, last.Bases)
		}
	}

	initLast := poolByName(t, pools, PoolInitialLast)
	for _, want := range []string{"Jsmith", "jsmith", "JSMITH"} {
		if !containsWord(initLast.Bases, want) {
			t.Errorf("initial+last pool missing %q: %v", want, initLast.Bases)
		}
	}
}

func TestBuildPools_FullNamesKeepRawForm(t *testing.T) {
	pools := BuildPools(&model.Profile{Names: []string{"John Smith"}})

	full := poolByName(t, pools, PoolFullNames)
	for _, want := range []string{"JohnSmith", "johnsmith", "Johnsmith", "JOHNSMITH"} {
		if !containsWord(full.Bases, want) {
			t.Errorf("full-name pool missing %q: %v", want, full.Bases)
		}
	}
}

func TestBuildPools_SingleWordName(t *testing.T) {
	pools := BuildPools(&model.Profile{Names: []string{"Madonna"}})

	if n := len(poolByName(t, pools, PoolLastNames).Bases); n != 0 {
		t.Errorf("single-word name produced %d last-name bases, want 0", n)
	}
	if !containsWord(poolByName(t, pools, PoolFullNames).Bases, "madonna") {
		t.Error("full-name pool missing single-word name")
	}
}

func TestBuildPools_TitlesAndDoubles(t *testing.T) {
	pools := BuildPools(&model.Profile{
		Names:  []string{"John Smith"},
		Brands: []string{"Nike"},
	})

	if !containsWord(poolByName(t, pools, PoolBrandTitle).Bases, "Nike") {
		t.Error("brand pool missing Nike")
	}
	if !containsWord(poolByName(t, pools, PoolDoubleWords).Bases, "johnsmithnike") {
		t.Error("double-word pool missing johnsmithnike")
	}
}

func TestBuildPools_ExtraBasesVerbatim(t *testing.T) {
	pools := BuildPools(&model.Profile{Extra: []string{"letmein", "My Pass"}})

	extra := poolByName(t, pools, PoolExtraBases)
	if !containsWord(extra.Bases, "letmein") {
		t.Errorf("extra pool missing letmein: %v", extra.Bases)
	}
	// Casing is preserved, whitespace is fused
	if !containsWord(extra.Bases, "MyPass") {
		t.Errorf("extra pool missing MyPass: %v", extra.Bases)
	}
	if containsWord(extra.Bases, "mypass") {
		t.Errorf("extra pool should not add casing variants: %v", extra.Bases)
	}
}

func TestBuildPools_EmptyProfile(t *testing.T) {
	for _, pool := range BuildPools(&model.Profile{}) {
		if len(pool.Bases) != 0 {
			t.Errorf("empty profile produced bases in pool %q: %v", pool.Name, pool.Bases)
		}
	}
}

func poolByName(t *testing.T, pools []Pool, name string) Pool {
	t.Helper()
	for _, p := range pools {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("pool %q not found", name)
	return Pool{}
}
