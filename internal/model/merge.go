package model

// ImportMerge appends imported entries whose URL is not already present.
// Imported ids are reassigned above the largest existing id.
// Returns the merged slice, how many were added and how many were skipped.
func ImportMerge(base, imported []Entry) ([]Entry, int, int) {
	merged := make([]Entry, len(base), len(base)+len(imported))
	copy(merged, base)

	seen := make(map[string]bool, len(base)+len(imported))
	var maxID int64
	for _, e := range base {
		seen[e.URL] = true
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	added, skipped := 0, 0
	for _, e := range imported {
		if seen[e.URL] {
			skipped++
			continue
		}
		seen[e.URL] = true
		maxID++
		e.ID = maxID
		merged = append(merged, e)
		added++
	}
	return merged, added, skipped
}
