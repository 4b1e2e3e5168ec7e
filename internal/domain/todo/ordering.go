package todo

import (
	"cmp"
	"slices"
)

// SortByPosition orders todos by descending position. The sort is stable so
// ties keep their store order.
func SortByPosition(todos []Todo) {
	slices.SortStableFunc(todos, func(a, b Todo) int {
		return cmp.Compare(b.Position, a.Position)
	})
}

// Group is a category bucket of todos for display.
type Group struct {
	Label string
	Todos []Todo
}

// GroupByCategory buckets todos by category label. Groups are ordered by
// label and each group's todos by descending position.
func GroupByCategory(todos []Todo) []Group {
	sorted := slices.Clone(todos)
	SortByPosition(sorted)

	index := make(map[string]int)
	var groups []Group
	for _, t := range sorted {
		label := CategoryLabel(t.Category)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Todos = append(groups[i].Todos, t)
	}

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	SortLabels(labels)

	out := make([]Group, 0, len(groups))
	for _, label := range labels {
		out = append(out, groups[index[label]])
	}
	return out
}
