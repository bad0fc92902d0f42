package domain

import "github.com/shopspring/decimal"

// IndexTable maps calendar years to the revaluation multipliers applied
// when rolling capital from one year to the next: valorization for the
// main account, profitability for the sub-account. The table is
// immutable once constructed; years not present fall back to the
// long-run default constants. There is no interpolation between known
// years.
type IndexTable struct {
	valorization    map[int]decimal.Decimal
	profitability   map[int]decimal.Decimal
	averagePensions map[Sex]decimal.Decimal
}

// NewIndexTable builds a table from the supplied mappings. The maps are
// copied so later mutation by the caller cannot leak into a running
// projection.
func NewIndexTable(valorization, profitability map[int]decimal.Decimal) *IndexTable {
	t := &IndexTable{
		valorization:  make(map[int]decimal.Decimal, len(valorization)),
		profitability: make(map[int]decimal.Decimal, len(profitability)),
	}
	for year, v := range valorization {
		t.valorization[year] = v
	}
	for year, v := range profitability {
		t.profitability[year] = v
	}
	return t
}

// WithAveragePensions attaches sex-specific population-average benefit
// overrides used by the plausibility checker. Returns the same table.
func (t *IndexTable) WithAveragePensions(averages map[Sex]decimal.Decimal) *IndexTable {
	if len(averages) == 0 {
		return t
	}
	t.averagePensions = make(map[Sex]decimal.Decimal, len(averages))
	for sex, v := range averages {
		t.averagePensions[sex] = v
	}
	return t
}

// ValorizationFor returns the main-account multiplier for the year, or
// the long-run default when the year is not in the table. Safe on a nil
// table.
func (t *IndexTable) ValorizationFor(year int) decimal.Decimal {
	if t != nil {
		if v, ok := t.valorization[year]; ok {
			return v
		}
	}
	return DefaultValorizationIndex
}

// ProfitabilityFor returns the sub-account multiplier for the year, or
// the long-run default when the year is not in the table. Safe on a nil
// table.
func (t *IndexTable) ProfitabilityFor(year int) decimal.Decimal {
	if t != nil {
		if v, ok := t.profitability[year]; ok {
			return v
		}
	}
	return DefaultProfitabilityIndex
}

// AveragePension returns the population-average benefit override for
// the sex, if the table carries one.
func (t *IndexTable) AveragePension(s Sex) (decimal.Decimal, bool) {
	if t == nil || t.averagePensions == nil {
		return decimal.Zero, false
	}
	v, ok := t.averagePensions[s]
	return v, ok
}
