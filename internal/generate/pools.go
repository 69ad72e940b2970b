package generate

import "github.com/aberg/wordbergler/internal/model"

// Pool is a named group of password base words. Pools are expanded in
// slice order, so the bases most worth trying land earliest in the
// output file
type Pool struct {
	Name  string
	Bases []string
}

// Pool names, in emission priority order
const (
	PoolLastNames   = "Last names"
	PoolInitialLast = "Initial+Last"
	PoolBrandTitle  = "Brand/Title"
	PoolFullNames   = "Full names"
	PoolExtraBases  = "Extra bases"
	PoolDoubleWords = "Double words"
)

// BuildPools derives the six password base pools from a profile.
// Every pool is deduplicated internally; cross-pool duplicates are
// left for the output set to collapse
func BuildPools(p *model.Profile) []Pool {
	names := CleanTokens(p.AllNames())
	titles := CleanTokens(p.AllTitles())

	// Last names and first-initial+last, split from the raw names
	var lastPool, initLastPool []string
	for _, full := range names {
		first, last := SplitFirstLast(full)
		first = CleanUsername(first)
		last = CleanUsername(last)
		if last == "" {
			continue
		}
		lastPool = append(lastPool, CaseVariants(last)...)
		initLastPool = append(initLastPool, InitialLastVariants(first, last)...)
	}

	var brandPool []string
	for _, title := range titles {
		brandPool = append(brandPool, BrandTitleVariants(title)...)
	}

	// Full names fused into single words. The raw fused form is kept
	// alongside the casing variants so CamelCase input survives
	var fullPool, fusedNames []string
	for _, full := range names {
		fused := CleanUsername(StripSpaces(full))
		if fused == "" {
			continue
		}
		fusedNames = append(fusedNames, fused)
		fullPool = append(fullPool, fused)
		fullPool = append(fullPool, CaseVariants(fused)...)
	}

	// Extra bases are used exactly as given, minus whitespace
	var extraPool []string
	for _, e := range p.Extra {
		if b := StripSpaces(e); b != "" {
			extraPool = append(extraPool, b)
		}
	}

	var fusedTitles []string
	for _, t := range titles {
		if f := StripSpaces(t); f != "" {
			fusedTitles = append(fusedTitles, f)
		}
	}
	doublePool := DoubleWordVariants(fusedNames, fusedTitles)

	return []Pool{
		{Name: PoolLastNames, Bases: dedupe(lastPool)},
		{Name: PoolInitialLast, Bases: dedupe(initLastPool)},
		{Name: PoolBrandTitle, Bases: dedupe(brandPool)},
		{Name: PoolFullNames, Bases: dedupe(fullPool)},
		{Name: PoolExtraBases, Bases: dedupe(extraPool)},
		{Name: PoolDoubleWords, Bases: doublePool},
	}
}
