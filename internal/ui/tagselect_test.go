package ui

import (
	"testing"

	"docwatch/internal/api"
	"docwatch/internal/config"
)

var testTags = []api.Tag{
	{ID: "t1", Name: "archive"},
	{ID: "t2", Name: "invoice", Category: "doctype"},
	{ID: "t3", Name: "urgent"},
}

func TestTagSelectToggle(t *testing.T) {
	keys := config.DefaultKeys()
	ts := NewTagSelect("Include tags").SetOptions(testTags)

	ts = ts.HandleKey("down", keys)
	ts = ts.HandleKey(keys.Toggle, keys)
	sel := ts.Selected()
	if len(sel) != 1 || sel[0].ID != "t2" {
		t.Fatalf("Selected() = %+v, want invoice", sel)
	}

	// Toggling again clears it.
	ts = ts.HandleKey(keys.Toggle, keys)
	if len(ts.Selected()) != 0 {
		t.Fatalf("expected empty selection, got %+v", ts.Selected())
	}
}

func TestTagSelectCursorBounds(t *testing.T) {
	keys := config.DefaultKeys()
	ts := NewTagSelect("Include tags").SetOptions(testTags)

	for i := 0; i < 10; i++ {
		ts = ts.HandleKey("down", keys)
	}
	ts = ts.HandleKey(keys.Toggle, keys)
	if sel := ts.Selected(); len(sel) != 1 || sel[0].Name != "urgent" {
		t.Fatalf("cursor did not clamp to last option: %+v", sel)
	}
}

func TestTagSelectSetOptionsKeepsSelection(t *testing.T) {
	keys := config.DefaultKeys()
	ts := NewTagSelect("Include tags").SetOptions(testTags)
	ts = ts.HandleKey(keys.Toggle, keys) // archive

	// New fetch result renames the tag but keeps its ID.
	ts = ts.SetOptions([]api.Tag{
		{ID: "t1", Name: "archived"},
		{ID: "t4", Name: "receipt"},
	})
	sel := ts.Selected()
	if len(sel) != 1 || sel[0].Name != "archived" {
		t.Fatalf("selection lost or stale after SetOptions: %+v", sel)
	}
}

func TestTagSelectSetSelectedSurvivesMissingOption(t *testing.T) {
	ts := NewTagSelect("Include tags").
		SetSelected([]api.Tag{{ID: "t9", Name: "legacy"}}).
		SetOptions(testTags)
	sel := ts.Selected()
	if len(sel) != 1 || sel[0].ID != "t9" {
		t.Fatalf("selection referencing an unfetched tag must survive: %+v", sel)
	}
}

func TestTagSelectToggleOnEmptyOptions(t *testing.T) {
	keys := config.DefaultKeys()
	ts := NewTagSelect("Include tags")
	ts = ts.HandleKey(keys.Toggle, keys)
	if len(ts.Selected()) != 0 {
		t.Fatal("toggle on empty options must not select anything")
	}
}
