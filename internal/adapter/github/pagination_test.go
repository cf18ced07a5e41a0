package github

import (
	"errors"
	"testing"

	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLastPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    int
		wantErr bool
	}{
		{
			name:   "next and last",
			header: `<https://api.github.com/organizations/1/members?per_page=30&page=2>; rel="next", <https://api.github.com/organizations/1/members?per_page=30&page=7>; rel="last"`,
			want:   7,
		},
		{
			name:   "last before next",
			header: `<https://api.github.com/organizations/1/members?per_page=30&page=7>; rel="last", <https://api.github.com/organizations/1/members?per_page=30&page=2>; rel="next"`,
			want:   7,
		},
		{
			name:   "page param first",
			header: `<https://api.github.com/user/1/repos?page=3&per_page=30>; rel="last"`,
			want:   3,
		},
		{
			name: "surrounding whitespace",
			header: `
				<https://api.github.com/user/1/repos?per_page=30&page=2>;   rel="next"  ,
				<https://api.github.com/user/1/repos?per_page=30&page=12>;rel="last"   `,
			want: 12,
		},
		{
			name:   "only prev and first",
			header: `<https://api.github.com/user/1/repos?per_page=30&page=5>; rel="prev", <https://api.github.com/user/1/repos?per_page=30&page=1>; rel="first"`,
			want:   5,
		},
		{
			name:   "numeric comparison, not lexical",
			header: `<https://x/r?per_page=30&page=9>; rel="next", <https://x/r?per_page=30&page=10>; rel="last"`,
			want:   10,
		},
		{
			name:    "only per_page",
			header:  `<https://api.github.com/user/1/repos?per_page=30>; rel="next"`,
			wantErr: true,
		},
		{
			name:    "page not a number",
			header:  `<https://api.github.com/user/1/repos?per_page=30&page=abc>; rel="last"`,
			wantErr: true,
		},
		{
			name:    "negative page",
			header:  `<https://api.github.com/user/1/repos?per_page=30&page=-2>; rel="last"`,
			wantErr: true,
		},
		{
			name:    "zero page",
			header:  `<https://api.github.com/user/1/repos?per_page=30&page=0>; rel="last"`,
			wantErr: true,
		},
		{
			name:    "page number overflow",
			header:  `<https://api.github.com/user/1/repos?per_page=30&page=99999999999999999999>; rel="last"`,
			wantErr: true,
		},
		{
			name:    "empty",
			header:  "",
			wantErr: true,
		},
		{
			name:    "garbage",
			header:  "garbage",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLastPage(tt.header)
			if tt.wantErr {
				var parseErr *app.PaginationParseError
				require.True(t, errors.As(err, &parseErr), "want PaginationParseError, got %v", err)
				assert.Equal(t, tt.header, parseErr.Header)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLinkHeader(t *testing.T) {
	header := `<https://x/r?per_page=30&page=2>; rel="next", <https://x/r?per_page=30>; rel="self", <https://x/r?per_page=30&page=4>; rel="last"`

	got, err := parseLinkHeader(header)
	require.NoError(t, err)
	assert.Equal(t, []pageLink{
		{URL: "https://x/r?per_page=30&page=2", Rel: "next", Page: 2},
		{URL: "https://x/r?per_page=30", Rel: "self", Page: 0},
		{URL: "https://x/r?per_page=30&page=4", Rel: "last", Page: 4},
	}, got)
}
