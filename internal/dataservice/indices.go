package dataservice

import (
	"slices"
	"strings"

	"quickstocks/internal/provider"
)

// supportedIndices maps the indices the application knows about to their
// display names.
var supportedIndices = map[provider.Symbol]string{
	"^GSPC": "S&P 500",
	"^NDX":  "Nasdaq 100",
	"^DJI":  "Dow Jones",
}

// SupportedIndices returns the known indices sorted by symbol. Constituents
// are not populated; use ProvideIndex for those.
func (s *Service) SupportedIndices() []provider.Index {
	out := make([]provider.Index, 0, len(supportedIndices))
	for sym, name := range supportedIndices {
		out = append(out, provider.Index{Symbol: sym, Name: name})
	}
	slices.SortFunc(out, func(a, b provider.Index) int {
		return strings.Compare(string(a.Symbol), string(b.Symbol))
	})
	return out
}

func indexName(symbol provider.Symbol) string {
	if name, ok := supportedIndices[symbol]; ok {
		return name
	}
	return string(symbol)
}
