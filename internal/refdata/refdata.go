package refdata

import (
	"fmt"
	"sort"
	"strings"
)

// Company is one entry in the built-in ticker reference table
type Company struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"company_name"`
	Exchange string `json:"exchange"`
	Sector   string `json:"sector"`
}

// SearchResult is one ticker search hit
type SearchResult struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name"`
	Exchange    string `json:"exchange"`
	Display     string `json:"display"`
}

// maxSearchResults caps one search response
const maxSearchResults = 15

// Lookup returns the reference entry for a ticker symbol
func Lookup(symbol string) (Company, bool) {
	c, ok := companies[strings.ToUpper(strings.TrimSpace(symbol))]
	return c, ok
}

// Search matches the query against ticker symbols first, then company
// names. Symbol hits rank ahead of name hits; within each group results
// are ordered by symbol. At most 15 results are returned.
func Search(query string) []SearchResult {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	seen := make(map[string]bool)
	var symbolHits, nameHits []Company

	for _, c := range ordered() {
		if strings.Contains(c.Symbol, q) {
			symbolHits = append(symbolHits, c)
			seen[c.Symbol] = true
		}
	}
	for _, c := range ordered() {
		if seen[c.Symbol] {
			continue
		}
		if strings.Contains(strings.ToUpper(c.Name), q) {
			nameHits = append(nameHits, c)
		}
	}

	hits := append(symbolHits, nameHits...)
	if len(hits) > maxSearchResults {
		hits = hits[:maxSearchResults]
	}

	results := make([]SearchResult, 0, len(hits))
	for _, c := range hits {
		results = append(results, SearchResult{
			Symbol:      c.Symbol,
			CompanyName: c.Name,
			Exchange:    c.Exchange,
			Display:     fmt.Sprintf("%s - %s (%s)", c.Symbol, c.Name, c.Exchange),
		})
	}
	return results
}

// ordered returns the table sorted by symbol for deterministic search output
func ordered() []Company {
	out := make([]Company, 0, len(companies))
	for _, c := range companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
