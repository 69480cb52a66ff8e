package models

import "strings"

// FilterAll matches every status.
const FilterAll = "all"

// Open/closed filter values for batch listings.
const (
	FilterOpen   = "open"
	FilterClosed = "closed"
)

// FilterCompanies derives the view collection for a directory filter:
// exact status match and case-insensitive substring match on the company
// name, combined with AND. Order is preserved and the input is never
// mutated.
func FilterCompanies(companies []*Company, search, status string) []*Company {
	filtered := make([]*Company, 0, len(companies))
	search = strings.ToLower(search)
	for _, c := range companies {
		if status != "" && status != FilterAll && c.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.CompanyName), search) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// FilterBatches derives the view collection for a batch filter: substring
// match on name and location (case-insensitive) and exact open/closed
// match, combined with AND.
func FilterBatches(batches []*Batch, name, location, status string) []*Batch {
	filtered := make([]*Batch, 0, len(batches))
	name = strings.ToLower(name)
	location = strings.ToLower(location)
	for _, b := range batches {
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(b.Location), location) {
			continue
		}
		if status != "" && status != FilterAll {
			if (status == FilterOpen) == b.IsClosed {
				continue
			}
		}
		filtered = append(filtered, b)
	}
	return filtered
}
