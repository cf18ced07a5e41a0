package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lang(s string) *string {
	return &s
}

func TestCountLanguages(t *testing.T) {
	tests := []struct {
		name  string
		repos []Repository
		want  LanguageCount
	}{
		{
			name:  "empty",
			repos: nil,
			want:  LanguageCount{},
		},
		{
			name: "mixed, with missing language",
			repos: []Repository{
				{Name: "a", Language: lang("Go")},
				{Name: "b", Language: lang("Rust")},
				{Name: "c", Language: nil},
				{Name: "d", Language: lang("Go")},
			},
			want: LanguageCount{
				"Go":   2,
				"Rust": 1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLanguages(tt.repos))
		})
	}
}

func TestProjectLanguages(t *testing.T) {
	bundle := []UserRepositories{
		{
			Member:       Member{Login: "alice"},
			Repositories: []Repository{{Name: "x", Language: lang("Go")}},
		},
		{
			Member:       Member{Login: "bob"},
			Repositories: []Repository{},
		},
	}

	got := ProjectLanguages(bundle)
	assert.Equal(t, []UserLanguages{
		{Member: Member{Login: "alice"}, Languages: LanguageCount{"Go": 1}},
		{Member: Member{Login: "bob"}, Languages: LanguageCount{}},
	}, got)
}

func TestFilterByLanguage(t *testing.T) {
	users := []UserLanguages{
		{Member: Member{Login: "carol"}, Languages: LanguageCount{"Go": 1, "Rust": 5}},
		{Member: Member{Login: "alice"}, Languages: LanguageCount{"Go": 3}},
		{Member: Member{Login: "bob"}, Languages: LanguageCount{"Python": 2}},
		{Member: Member{Login: "dave"}, Languages: LanguageCount{"Go": 3}},
	}

	logins := func(us []UserLanguages) []string {
		var res []string
		for _, u := range us {
			res = append(res, u.Member.Login)
		}
		return res
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "empty search sorts by login",
			search: "",
			want:   []string{"alice", "bob", "carol", "dave"},
		},
		{
			name:   "case insensitive, sorted by count",
			search: "gO",
			want:   []string{"alice", "dave", "carol"},
		},
		{
			name:   "substring",
			search: "ust",
			want:   []string{"carol"},
		},
		{
			name:   "no match",
			search: "haskell",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logins(FilterByLanguage(users, tt.search)))
		})
	}
}
