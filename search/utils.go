package search

import "sort"

// byScore is a sortable list of root scores. It sorts the list with best score first and keeps
// generation order between equal scores.
type byScore []RootScore

func (l byScore) Len() int           { return len(l) }
func (l byScore) Less(i, j int) bool { return l[i].Score > l[j].Score }
func (l byScore) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// Ranked returns the root moves of r, best first.
func (r Result) Ranked() []RootScore {
	retVal := append([]RootScore(nil), r.Root...)
	sort.Stable(byScore(retVal))
	return retVal
}
