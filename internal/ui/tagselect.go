package ui

import (
	"sort"
	"strings"

	"docwatch/internal/api"
	"docwatch/internal/config"
)

// TagSelect is a multi-select over the fetched tag list. Selections are
// tracked by tag ID so a later SetOptions (the background fetch landing)
// keeps what the user already picked.
type TagSelect struct {
	title    string
	options  []api.Tag
	selected map[string]api.Tag
	cursor   int
	focused  bool
}

func NewTagSelect(title string) TagSelect {
	return TagSelect{title: title, selected: map[string]api.Tag{}}
}

// HandleKey processes a navigation or toggle key. Unknown keys are
// ignored; the picker has no free-text entry.
func (t TagSelect) HandleKey(key string, keys config.Keymap) TagSelect {
	switch key {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.options)-1 {
			t.cursor++
		}
	case keys.Toggle, keys.Confirm:
		t = t.toggleCursor()
	}
	return t
}

func (t TagSelect) toggleCursor() TagSelect {
	if t.cursor < 0 || t.cursor >= len(t.options) {
		return t
	}
	tag := t.options[t.cursor]
	sel := make(map[string]api.Tag, len(t.selected))
	for id, v := range t.selected {
		sel[id] = v
	}
	if _, ok := sel[tag.ID]; ok {
		delete(sel, tag.ID)
	} else {
		sel[tag.ID] = tag
	}
	t.selected = sel
	return t
}

// SetOptions replaces the option set. Selections survive by ID; a
// selected tag missing from the new options stays selected (an existing
// task may reference tags outside the fetched page).
func (t TagSelect) SetOptions(tags []api.Tag) TagSelect {
	t.options = append([]api.Tag(nil), tags...)
	sort.Slice(t.options, func(i, j int) bool {
		return strings.ToLower(t.options[i].Name) < strings.ToLower(t.options[j].Name)
	})
	if t.cursor >= len(t.options) {
		t.cursor = len(t.options) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	// Refresh display data for selected tags present in the new set.
	sel := make(map[string]api.Tag, len(t.selected))
	for id, v := range t.selected {
		sel[id] = v
	}
	for _, tag := range t.options {
		if _, ok := sel[tag.ID]; ok {
			sel[tag.ID] = tag
		}
	}
	t.selected = sel
	return t
}

// SetSelected marks the given tags as selected, replacing any prior
// selection. Used when editing an existing task.
func (t TagSelect) SetSelected(tags []api.Tag) TagSelect {
	sel := make(map[string]api.Tag, len(tags))
	for _, tag := range tags {
		sel[tag.ID] = tag
	}
	t.selected = sel
	return t
}

// Selected returns the chosen tags ordered by name.
func (t TagSelect) Selected() []api.Tag {
	out := make([]api.Tag, 0, len(t.selected))
	for _, tag := range t.selected {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (t TagSelect) Focus() TagSelect {
	t.focused = true
	return t
}

func (t TagSelect) Blur() TagSelect {
	t.focused = false
	return t
}

func (t TagSelect) View() string {
	var b strings.Builder
	b.WriteString(t.title)
	if len(t.selected) > 0 {
		names := make([]string, 0, len(t.selected))
		for _, tag := range t.Selected() {
			names = append(names, tag.Name)
		}
		b.WriteString(" " + selectedMarkStyle.Render("("+strings.Join(names, ", ")+")"))
	}
	b.WriteString("\n")

	if len(t.options) == 0 {
		b.WriteString(hintStyle.Render("  no tags available"))
		b.WriteString("\n")
		return b.String()
	}

	for i, tag := range t.options {
		cursor := "  "
		if t.focused && i == t.cursor {
			cursor = cursorMarkStyle.Render("> ")
		}
		mark := "[ ]"
		if _, ok := t.selected[tag.ID]; ok {
			mark = selectedMarkStyle.Render("[x]")
		}
		b.WriteString(cursor + mark + " " + tag.Name)
		if tag.Category != "" {
			b.WriteString(hintStyle.Render(" · " + tag.Category))
		}
		b.WriteString("\n")
	}
	return b.String()
}
