// Package indices supplies the yearly valorization and profitability
// multipliers consumed by the projection engine: a fixed default table
// assembled from the official publications, plus a YAML loader for
// caller-supplied overrides.
package indices

import (
	"github.com/pmroz/zusgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Historical indices (2015-2024) are actuals from the annual reports;
// later years are projections from the pension fund publication
// covering 2023-2080. Long-run years stabilize at the default
// constants.
var defaultValorization = map[int]float64{
	2015: 1.0407,
	2016: 1.0039,
	2017: 1.0464,
	2018: 1.0529,
	2019: 1.0643,
	2020: 1.0486,
	2021: 1.0524,
	2022: 1.1086,
	2023: 1.1439,
	2024: 1.1266,
	2025: 1.0580,
	2026: 1.0520,
	2027: 1.0480,
	2028: 1.0450,
	2029: 1.0430,
	2030: 1.0420,
	2031: 1.0410,
	2032: 1.0400,
	2033: 1.0400,
	2034: 1.0400,
	2035: 1.0400,
}

// Sub-account profitability typically tracks a lower benchmark than
// main-account valorization.
var defaultProfitability = map[int]float64{
	2024: 1.0350,
	2025: 1.0380,
	2026: 1.0360,
	2027: 1.0350,
	2028: 1.0340,
	2029: 1.0330,
	2030: 1.0330,
}

const defaultHorizonEnd = 2080

// Default returns the built-in historical + projected index table. Each
// call builds a fresh immutable table; years beyond the explicit data
// up to 2080 carry the long-run constants, and anything else falls back
// to the same constants through the table's lookup defaults.
func Default() *domain.IndexTable {
	valorization := make(map[int]decimal.Decimal, defaultHorizonEnd-2015+1)
	profitability := make(map[int]decimal.Decimal, defaultHorizonEnd-2024+1)

	for year, v := range defaultValorization {
		valorization[year] = decimal.NewFromFloat(v)
	}
	for year := 2036; year <= defaultHorizonEnd; year++ {
		valorization[year] = domain.DefaultValorizationIndex
	}

	for year, v := range defaultProfitability {
		profitability[year] = decimal.NewFromFloat(v)
	}
	for year := 2031; year <= defaultHorizonEnd; year++ {
		profitability[year] = domain.DefaultProfitabilityIndex
	}

	return domain.NewIndexTable(valorization, profitability).
		WithAveragePensions(map[domain.Sex]decimal.Decimal{
			domain.SexMale:   decimal.NewFromInt(3500),
			domain.SexFemale: decimal.NewFromInt(2800),
		})
}
