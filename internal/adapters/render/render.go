// Package render prints command results as human-readable lines.
package render

import (
	"fmt"
	"io"

	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/application/commands"
	"funknotes/internal/domain"
)

// Projects prints one line per project, marking the primary one
func Projects(w io.Writer, projects []domain.ProjectSummary) {
	if len(projects) == 0 {
		fmt.Fprintln(w, styles.MutedText.Render("No projects found"))
		return
	}
	for _, p := range projects {
		line := fmt.Sprintf("  [%d] %s", p.Index, styles.NodeProject.Render(p.Name))
		if p.IsPrimary {
			line += " " + styles.PrimaryBadge.Render("(PRIMARY)")
		}
		fmt.Fprintln(w, line)
	}
}

// Objects prints the objects of a project with their item counts
func Objects(w io.Writer, listing *commands.ObjectListing) {
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("=== Objects in '%s' ===", listing.Project)))
	if len(listing.Objects) == 0 {
		fmt.Fprintln(w, styles.MutedText.Render("(empty)"))
		return
	}
	for _, o := range listing.Objects {
		fmt.Fprintf(w, "  • %s (%d items)\n", styles.NodeObject.Render(o.Name), o.Count)
	}
}

// Items prints the numbered items of an object
func Items(w io.Writer, listing *commands.ItemListing) {
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("=== %s ===", listing.Object)))
	if len(listing.Items) == 0 {
		fmt.Fprintln(w, styles.MutedText.Render("(empty)"))
		return
	}
	for _, item := range listing.Items {
		fmt.Fprintf(w, "%s [%s] %s\n",
			styles.NodeIndex.Render(fmt.Sprintf("%d.", item.Index)),
			styles.Timestamp.Render(item.Timestamp),
			item.Text,
		)
	}
}

// Show prints whichever listing a show command produced
func Show(w io.Writer, res *commands.ShowResult) {
	if res.Items != nil {
		Items(w, res.Items)
		return
	}
	if res.Objects != nil {
		Objects(w, res.Objects)
	}
}

// History prints the audit trail of an object
func History(w io.Writer, listing *commands.HistoryListing) {
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("=== History of %s ===", listing.Object)))
	if len(listing.Entries) == 0 {
		fmt.Fprintln(w, styles.MutedText.Render("(empty)"))
		return
	}
	for _, e := range listing.Entries {
		fmt.Fprintf(w, "%s [%s] %s\n", action(e.Action), styles.Timestamp.Render(e.Timestamp), e.Text)
	}
}

func action(a domain.Action) string {
	label := fmt.Sprintf("%-11s", a)
	if a == domain.ActionDeleteItem {
		return styles.ActionDelete.Render(label)
	}
	return styles.ActionAdd.Render(label)
}

// SearchResults prints matches as "object: [timestamp] text"
func SearchResults(w io.Writer, res *commands.SearchResults) {
	if len(res.Matches) == 0 {
		fmt.Fprintln(w, styles.MutedText.Render("No matches found"))
		return
	}
	for _, m := range res.Matches {
		fmt.Fprintf(w, "%s: [%s] %s\n",
			styles.NodeObject.Render(m.Object),
			styles.Timestamp.Render(m.Item.Timestamp),
			m.Item.Text,
		)
	}
}

// Message prints a success message
func Message(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(w, styles.Success.Render(msg))
}

// Warnings prints each warning on its own line
func Warnings(w io.Writer, warnings []string) {
	for _, warn := range warnings {
		fmt.Fprintln(w, styles.WarningMsg.Render("Warning: "+warn))
	}
}

// Error prints an error message
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, styles.ErrorMsg.Render("Error: "+err.Error()))
}
