package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/olekukonko/tablewriter"
)

func renderMembers(w io.Writer, members []app.Member) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Login", "ID", "Avatar"})
	for _, m := range members {
		table.Append([]string{m.Login, strconv.Itoa(m.ID), m.AvatarURL})
	}
	table.Render()
}

func renderLanguages(w io.Writer, users []app.UserLanguages) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Login", "Languages"})
	table.SetAutoWrapText(false)
	for _, u := range users {
		table.Append([]string{u.Member.Login, formatLanguages(u.Languages)})
	}
	table.Render()
}

// formatLanguages lists languages by repository count, descending, then by name.
func formatLanguages(langs app.LanguageCount) string {
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, langs[name]))
	}

	return strings.Join(parts, ", ")
}

// progressBar shows fetched users count. Implements app.Progress.
type progressBar struct {
	out io.Writer
	bar *pb.ProgressBar
}

func (p *progressBar) Start(total int) {
	p.bar = pb.New(total).SetWriter(p.out).Start()
}

func (p *progressBar) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish stops the bar. Safe to call if Start wasn't called.
// Users dropped from the result are never incremented, so the total is
// shrunk to the completed count and the bar ends at 100%.
func (p *progressBar) Finish() {
	if p.bar != nil {
		p.bar.SetTotal(p.bar.Current())
		p.bar.Finish()
	}
}
