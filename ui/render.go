package ui

import (
	"fmt"
	"strings"

	"twitch-app-api/twitchapi"

	"github.com/charmbracelet/lipgloss"
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}

// RenderAddon formats an add-on as a bordered summary card.
func RenderAddon(a *twitchapi.Addon) string {
	authors := make([]string, 0, len(a.Authors))
	for _, au := range a.Authors {
		authors = append(authors, au.Name)
	}

	rows := []string{
		TitleStyle.Render(a.Name) + fmt.Sprintf(" (%s, id %.0f)", a.Slug, a.ID),
		a.Summary,
		"",
		row("Game", a.GameName),
		row("Section", a.CategorySection.Name),
		row("Authors", strings.Join(authors, ", ")),
		row("Downloads", fmt.Sprintf("%.0f", a.DownloadCount)),
		row("Website", a.WebsiteURL),
		row("Updated", a.DateModified),
	}
	if a.IsExperimental {
		rows = append(rows, row("Status", ErrorStyle.Render("experimental")))
	}

	if f := a.DefaultFile(); f != nil {
		rows = append(rows, "", TitleStyle.Render("Default file"), RenderFile(f))
	}

	if len(a.GameVersionLatestFiles) > 0 {
		rows = append(rows, "", TitleStyle.Render("Latest per game version"))
		for _, gv := range a.GameVersionLatestFiles {
			rows = append(rows, fmt.Sprintf("  • %-10s %s", gv.GameVersion, gv.ProjectFileName))
		}
	}

	return BoxStyle.Render(strings.Join(rows, "\n"))
}

// RenderFile formats a single file and its dependency count.
func RenderFile(f *twitchapi.File) string {
	rows := []string{
		row("Name", f.DisplayName),
		row("Release", ReleaseBadge(f.ReleaseTypeName())),
		row("Versions", strings.Join(f.GameVersion, ", ")),
		row("Size", fmt.Sprintf("%d bytes", f.FileLength)),
		row("Download", f.DownloadURL),
	}
	if n := len(f.Dependencies); n > 0 {
		rows = append(rows, row("Dependencies", fmt.Sprintf("%d", n)))
	}
	if f.ExposeAsAlternative != nil {
		rows = append(rows, row("Alternative", f.ExposeAsAlternative.DisplayName))
	}
	return strings.Join(rows, "\n")
}

// RenderCategory formats one category as a single line.
func RenderCategory(c *twitchapi.Category) string {
	return fmt.Sprintf("%s %s (id %.0f, game %.0f)", OKStyle.Render("•"), TitleStyle.Render(c.Name), c.ID, c.GameID)
}

// RenderSection formats every category of a section, one per line.
func RenderSection(id uint64, categories []twitchapi.Category) string {
	if len(categories) == 0 {
		return fmt.Sprintf("Section %d has no categories.", id)
	}
	lines := []string{fmt.Sprintf("Section %d: %d categories", id, len(categories))}
	for i := range categories {
		lines = append(lines, "  "+RenderCategory(&categories[i]))
	}
	return strings.Join(lines, "\n")
}
