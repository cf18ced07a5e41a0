package app

import (
	"sort"
	"strings"
)

// CountLanguages groups repositories by language.
// Repositories without language are skipped.
func CountLanguages(repos []Repository) LanguageCount {
	counts := make(LanguageCount)
	for _, r := range repos {
		if r.Language == nil {
			continue
		}
		counts[*r.Language]++
	}

	return counts
}

// ProjectLanguages converts user repositories into per user language counts.
func ProjectLanguages(bundle []UserRepositories) []UserLanguages {
	result := make([]UserLanguages, 0, len(bundle))
	for _, ur := range bundle {
		result = append(result, UserLanguages{
			Member:    ur.Member,
			Languages: CountLanguages(ur.Repositories),
		})
	}

	return result
}

// FilterByLanguage returns users having at least one language containing search (case insensitive).
// Result is sorted by the best matching language count, descending, then by login.
// Empty search matches every user.
func FilterByLanguage(users []UserLanguages, search string) []UserLanguages {
	search = strings.ToLower(strings.TrimSpace(search))

	type match struct {
		user  UserLanguages
		count int
	}
	matches := make([]match, 0, len(users))
	for _, u := range users {
		if search == "" {
			matches = append(matches, match{user: u})
			continue
		}

		best := 0
		for lang, count := range u.Languages {
			if strings.Contains(strings.ToLower(lang), search) && count > best {
				best = count
			}
		}
		if best > 0 {
			matches = append(matches, match{user: u, count: best})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].count != matches[j].count {
			return matches[i].count > matches[j].count
		}
		return matches[i].user.Member.Login < matches[j].user.Member.Login
	})

	result := make([]UserLanguages, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.user)
	}

	return result
}
