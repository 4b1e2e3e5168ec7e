package todo

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UncategorizedLabel is the display label for todos without a category.
const UncategorizedLabel = "Uncategorized"

// CategoryLabel returns the display label for a category value.
func CategoryLabel(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return UncategorizedLabel
}

// IsCoursesSubCategory reports whether a sub-category activates expiration
// tracking for checklist items.
func IsCoursesSubCategory(subCategory string) bool {
	switch strings.ToLower(strings.TrimSpace(subCategory)) {
	case "courses", "course":
		return true
	default:
		return false
	}
}

// DistinctCategories returns the de-duplicated, trimmed, non-empty categories
// of the given todos in collation order.
func DistinctCategories(todos []Todo) []string {
	seen := make(map[string]struct{}, len(todos))
	out := make([]string, 0, len(todos))
	for i := range todos {
		c := strings.TrimSpace(todos[i].Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	SortLabels(out)
	return out
}

// SortLabels sorts display strings in place using locale-aware collation.
func SortLabels(labels []string) {
	collate.New(language.Und).SortStrings(labels)
}
