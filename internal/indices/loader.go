package indices

import (
	"fmt"
	"os"

	"github.com/pmroz/zusgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML shape of a caller-supplied index table.
type tableFile struct {
	Valorization    map[int]decimal.Decimal    `yaml:"valorization"`
	Profitability   map[int]decimal.Decimal    `yaml:"profitability"`
	AveragePensions map[string]decimal.Decimal `yaml:"averagePensions"`
}

// LoadFromFile reads an index table override from a YAML file. Years in
// [0.9, 1.5] are the plausible multiplier range; values outside it are
// rejected to catch percent-vs-multiplier mixups.
func LoadFromFile(path string) (*domain.IndexTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds an immutable index table from YAML bytes.
func Parse(data []byte) (*domain.IndexTable, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse index table YAML: %w", err)
	}

	lo := decimal.NewFromFloat(0.9)
	hi := decimal.NewFromFloat(1.5)
	for year, v := range file.Valorization {
		if v.LessThan(lo) || v.GreaterThan(hi) {
			return nil, fmt.Errorf("valorization index for %d out of range [0.9, 1.5]: %s", year, v)
		}
	}
	for year, v := range file.Profitability {
		if v.LessThan(lo) || v.GreaterThan(hi) {
			return nil, fmt.Errorf("profitability index for %d out of range [0.9, 1.5]: %s", year, v)
		}
	}

	table := domain.NewIndexTable(file.Valorization, file.Profitability)
	if len(file.AveragePensions) > 0 {
		averages := make(map[domain.Sex]decimal.Decimal, len(file.AveragePensions))
		for raw, v := range file.AveragePensions {
			sex, ok := domain.ParseSex(raw)
			if !ok {
				return nil, fmt.Errorf("averagePensions: unrecognized sex %q", raw)
			}
			averages[sex] = v
		}
		table = table.WithAveragePensions(averages)
	}
	return table, nil
}
