package github

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-zajac/orgrepos/internal/app"
)

// Matches `page` query param only. Preceding ? or & excludes per_page.
var pageParamPattern = regexp.MustCompile(`[?&]page=([^&#>;,\s]*)`)

// pageLink is a single `<url>; rel="name"` entry of a Link header.
type pageLink struct {
	URL string
	Rel string

	// Page is the page query param value, 0 if url has none.
	Page int
}

// parseLinkHeader splits Link header value into entries.
// Entries may come in any order. Entries without page param are kept with Page 0.
func parseLinkHeader(header string) ([]pageLink, error) {
	var links []pageLink
	for _, entry := range strings.Split(header, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ";")
		link := pageLink{
			URL: strings.Trim(strings.TrimSpace(parts[0]), "<>"),
		}
		for _, param := range parts[1:] {
			param = strings.TrimSpace(param)
			if strings.HasPrefix(param, "rel=") {
				link.Rel = strings.Trim(strings.TrimPrefix(param, "rel="), `"`)
			}
		}

		for _, m := range pageParamPattern.FindAllStringSubmatch(link.URL, -1) {
			page, err := strconv.ParseUint(m[1], 10, 31)
			if err != nil || page == 0 {
				return nil, &app.PaginationParseError{
					Header: header,
					Reason: fmt.Sprintf("invalid page number %q", m[1]),
				}
			}
			if int(page) > link.Page {
				link.Page = int(page)
			}
		}

		links = append(links, link)
	}

	return links, nil
}

// parseLastPage returns the highest page number found in Link header.
//
// The highest number is taken instead of reading the rel="last" entry, because entries naming differs between endpoints
// (on the last page there's no "last" entry at all, only "prev" and "first").
func parseLastPage(header string) (int, error) {
	links, err := parseLinkHeader(header)
	if err != nil {
		return 0, err
	}

	last := 0
	for _, l := range links {
		if l.Page > last {
			last = l.Page
		}
	}
	if last == 0 {
		return 0, &app.PaginationParseError{
			Header: header,
			Reason: "no page number found",
		}
	}

	return last, nil
}
