package lastplanner

// PackClustersIntoRows distributes cluster members over display rows by
// their position inside the cluster: the i-th member of every cluster lands
// in row i. Row 0 collects the first member of each cluster, row 1 the
// second, and so on, so a cluster of n mutually stacked tasks occupies n
// rows while unrelated clusters share them.
//
// Rows are not chronologically ordered here; callers sort each row by start
// date before rendering it.
func PackClustersIntoRows(clusters [][]TaskInterval) [][]TaskInterval {
	var rows [][]TaskInterval

	for _, cluster := range clusters {
		for i, member := range cluster {
			if i == len(rows) {
				rows = append(rows, nil)
			}
			rows[i] = append(rows[i], member)
		}
	}

	return rows
}
