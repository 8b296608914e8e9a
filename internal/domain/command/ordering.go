package command

import "sort"

// SortForDelivery orders commands the way a device must execute them:
// priority descending, then creation time, then insertion sequence.
func SortForDelivery(cmds []*Command) {
	sort.SliceStable(cmds, func(i, j int) bool {
		a, b := cmds[i], cmds[j]
		if a.priority.Rank() != b.priority.Rank() {
			return a.priority.Rank() > b.priority.Rank()
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.seq < b.seq
	})
}
