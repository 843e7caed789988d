package lastplanner

// ClusterByOverlap partitions a user's tasks into groups connected by
// overlapping intervals. Tasks are scanned in input order: each one joins the
// first existing cluster containing any member it overlaps, otherwise it
// starts a new cluster at the end of the list.
//
// Clusters are never merged after the fact, so two clusters created early on
// stay separate even if a later task happens to bridge them. The grouping is
// therefore order-dependent, which matches how the planning board stacks
// tasks as they come in. Do not replace this with a connected-components
// pass; that produces different clusters for bridged configurations.
//
// Every input task lands in exactly one cluster, members keep their input
// order, and the input slice is left untouched.
func ClusterByOverlap(items []TaskInterval) [][]TaskInterval {
	var clusters [][]TaskInterval

	for _, item := range items {
		placed := false
		for ci, cluster := range clusters {
			if overlapsAny(item, cluster) {
				clusters[ci] = append(cluster, item)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, []TaskInterval{item})
		}
	}

	return clusters
}

func overlapsAny(item TaskInterval, cluster []TaskInterval) bool {
	for _, member := range cluster {
		if item.Interval.Overlaps(member.Interval) {
			return true
		}
	}
	return false
}
