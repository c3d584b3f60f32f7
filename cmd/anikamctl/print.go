package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kamdevo/AniKam/internal/browse"
	"github.com/kamdevo/AniKam/internal/media"
)

var (
	titleStyle = color.New(color.Bold, color.FgCyan)
	labelStyle = color.New(color.FgHiBlue)
	warnStyle  = color.New(color.FgYellow)
	scoreStyle = color.New(color.FgGreen)
	dimStyle   = color.New(color.FgHiBlack)
)

func configureColors() {
	if flagNoColor {
		color.NoColor = true
	}
}

func printPage(pg browse.Page) {
	if pg.Fallback {
		warnStyle.Fprintln(os.Stderr, "offline: showing bundled catalog")
	}
	rows := make([][]string, 0, len(pg.Items))
	for _, m := range pg.Items {
		rows = append(rows, []string{
			m.ID,
			truncate(m.Title, 40),
			string(m.Type),
			string(m.Status),
			strconv.Itoa(m.ReleaseYear),
			fmt.Sprintf("%.2f", m.Rating),
			strings.Join(genreStrings(m.Genres), ", "),
		})
	}
	renderTable([]string{"ID", "Title", "Type", "Status", "Year", "Score", "Genres"}, rows)
	dimStyle.Printf("page %d", pg.Page)
	if pg.HasNext {
		dimStyle.Print(" (more available)")
	}
	fmt.Println()
}

func printDetails(m media.Media) {
	titleStyle.Println(m.Title)
	if m.TitleJapanese != "" {
		dimStyle.Println(m.TitleJapanese)
	}
	fmt.Println()

	detail("Type", string(m.Type))
	detail("Status", string(m.Status))
	detail("Year", strconv.Itoa(m.ReleaseYear))
	detail("Score", scoreStyle.Sprintf("%.2f", m.Rating))
	detail("Genres", strings.Join(genreStrings(m.Genres), ", "))
	if m.Episodes != nil {
		detail("Episodes", strconv.Itoa(*m.Episodes))
	}
	if m.Chapters != nil {
		detail("Chapters", strconv.Itoa(*m.Chapters))
	}
	if m.Duration != nil {
		detail("Duration", fmt.Sprintf("%d min", *m.Duration))
	}
	if m.Studio != "" {
		detail("Studio", m.Studio)
	}
	if m.Author != "" {
		detail("Author", m.Author)
	}
	detail("Age rating", m.AgeRating)
	detail("Platforms", strings.Join(m.Platforms, ", "))
	if len(m.Tags) > 0 {
		detail("Tags", strings.Join(m.Tags, ", "))
	}
	if m.Description != "" {
		fmt.Println()
		fmt.Println(m.Description)
	}
}

func detail(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s %s\n", labelStyle.Sprintf("%-11s", label+":"), value)
}

func renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewTable(os.Stdout)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Alignment.Global = tw.AlignLeft
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return
	}
	_ = table.Render()
}

func genreStrings(genres []media.Genre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = string(g)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
