package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"taskpick/pkg/manager"
)

// ErrDismissed is returned when the user backs out of a prompt without
// choosing anything.
var ErrDismissed = fmt.Errorf("selection dismissed")

// Confirm prompts the user for yes/no confirmation.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	label := prompt
	if defaultYes {
		label += " [Y/n]"
	} else {
		label += " [y/N]"
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultYes {
		p.Default = "y"
	}

	result, err := p.Run()
	if err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return defaultYes, nil // Return default on error
	}

	result = strings.ToLower(strings.TrimSpace(result))
	if result == "" {
		return defaultYes, nil
	}

	return result == "y" || result == "yes", nil
}

// taskChoice is the display row backing the plain task picker.
type taskChoice struct {
	Name        string
	Command     string
	Description string
	item        manager.Item
}

// SelectSource prompts the user to pick one of the discovered manifests.
func SelectSource(sources []manager.Source, prompt string) (*manager.Source, error) {
	if len(sources) == 0 {
		return nil, ErrDismissed
	}

	if len(sources) == 1 {
		return &sources[0], nil
	}

	type sourceChoice struct {
		Title string
		Dir   string
	}

	choices := make([]sourceChoice, len(sources))
	for i, src := range sources {
		title := src.Title
		if strings.TrimSpace(title) == "" {
			title = src.Dir
		}
		choices[i] = sourceChoice{Title: title, Dir: src.Dir}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Title | cyan }} {{ .Dir | faint }}",
		Inactive: "  {{ .Title }} {{ .Dir | faint }}",
		Selected: "✓ {{ .Title | cyan }}",
	}

	p := promptui.Select{
		Label:     prompt,
		Items:     choices,
		Templates: templates,
		Size:      10,
	}

	index, _, err := p.Run()
	if err != nil {
		return nil, ErrDismissed
	}

	return &sources[index], nil
}

// SelectTask prompts the user to pick one task from a source.
func SelectTask(src *manager.Source, prompt string) (manager.Item, error) {
	if len(src.Items) == 0 {
		return nil, ErrDismissed
	}

	choices := make([]taskChoice, len(src.Items))
	for i, it := range src.Items {
		choices[i] = taskChoice{
			Name:        it.Label(),
			Command:     src.Request(it).Command(),
			Description: it.Description(),
			item:        it,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Name | cyan }} {{ .Description | faint }}",
		Inactive: "  {{ .Name }} {{ .Description | faint }}",
		Selected: "✓ {{ .Command | cyan }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(choices[index].Name)
		return strings.Contains(name, strings.ToLower(input))
	}

	p := promptui.Select{
		Label:     prompt,
		Items:     choices,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
	}

	index, _, err := p.Run()
	if err != nil {
		return nil, ErrDismissed
	}

	return choices[index].item, nil
}
