package model

import "testing"

func TestItemValidate(t *testing.T) {
	valid := Item{Name: "Widget", Category: "Tools", Color: "red"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid item, got %v", err)
	}

	missing := []Item{
		{Category: "Tools", Color: "red"},
		{Name: "Widget", Color: "red"},
		{Name: "Widget", Category: "Tools"},
		{Name: "  ", Category: "Tools", Color: "red"},
	}
	for _, item := range missing {
		if err := item.Validate(); err == nil {
			t.Errorf("expected validation error for %+v", item)
		}
	}
}

func TestItemPatchApply(t *testing.T) {
	existing := Item{
		ID:          1,
		Name:        "Widget",
		Category:    "Tools",
		Color:       "red",
		Description: "old",
	}

	description := "new"
	patched := ItemPatch{Description: &description}.Apply(existing)

	if patched.Name != "Widget" || patched.Category != "Tools" || patched.Color != "red" {
		t.Errorf("patch touched unrelated fields: %+v", patched)
	}
	if patched.Description != "new" {
		t.Errorf("expected description 'new', got %q", patched.Description)
	}

	// An explicit empty string is a value, not an absent field.
	empty := ""
	cleared := ItemPatch{Description: &empty}.Apply(existing)
	if cleared.Description != "" {
		t.Errorf("expected description cleared, got %q", cleared.Description)
	}
}
