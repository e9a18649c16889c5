package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"taskpick/pkg/manager"
)

// PrintCatalog prints all sources and their tasks in a formatted table.
func PrintCatalog(sources []manager.Source) {
	if len(sources) == 0 {
		MutedMsg("No package.json found")
		return
	}

	for i, src := range sources {
		if i > 0 {
			fmt.Println()
		}
		PrintSource(src)
	}
}

// PrintSource prints one source's tasks.
func PrintSource(src manager.Source) {
	title := src.Title
	if title == "" {
		title = src.Dir
	}
	fmt.Printf("%s %s\n", SourceTitle.Sprint(title), Muted.Sprintf("[%s] %s", src.Manager, src.Dir))

	if len(src.Items) == 0 {
		MutedMsg("  no tasks")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, it := range src.Items {
		name := TaskName.Sprint(it.Label())
		desc := it.Description()
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", name, TaskCommand.Sprint(manager.Request{Manager: src.Manager, Args: it.Args()}.Command()), Muted.Sprint(desc))
	}
	w.Flush()
}

// PrintManagers prints the doctor report: which managers are installed,
// their reported versions, and which one governs the current workspace.
func PrintManagers(available map[manager.Manager]bool, versions map[manager.Manager]string, active manager.Manager) {
	HeaderMsg("Package Managers")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range []manager.Manager{manager.NPM, manager.Yarn, manager.Pnpm, manager.Bun} {
		status := Red(SymbolError + " not found")
		if available[m] {
			status = Green(SymbolSuccess + " installed")
		}
		marker := ""
		if m == active {
			marker = Cyan("(active)")
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", TaskName.Sprint(m.String()), status, Muted.Sprint(versions[m]), marker)
	}
	w.Flush()
}
