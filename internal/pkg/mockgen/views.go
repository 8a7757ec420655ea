package mockgen

import "sort"

// Derived render-time views over generated articles. None of these are
// persisted; all of them leave their input untouched.

// HotArticles returns the top-limit articles ordered by descending
// comment count.
func HotArticles(articles []Article, limit int) []Article {
	sorted := append([]Article(nil), articles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Comments) > len(sorted[j].Comments)
	})
	return truncate(sorted, limit)
}

// RecentArticles returns the top-limit articles ordered by descending
// creation date.
func RecentArticles(articles []Article, limit int) []Article {
	sorted := append([]Article(nil), articles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return truncate(sorted, limit)
}

// LastComments flattens all articles' comments, sorts them by
// descending date and truncates to limit.
func LastComments(articles []Article, limit int) []Comment {
	var comments []Comment
	for _, article := range articles {
		comments = append(comments, article.Comments...)
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return truncate(comments, limit)
}

// UsedCategories returns the distinct categories referenced by the
// articles, in order of first appearance.
func UsedCategories(articles []Article) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, article := range articles {
		for _, category := range article.Categories {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			categories = append(categories, category)
		}
	}
	return categories
}

func truncate[T any](items []T, limit int) []T {
	if limit < len(items) {
		return items[:limit]
	}
	return items
}
