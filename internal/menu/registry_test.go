package menu

import "testing"

func TestBuildRegistryLinksChildren(t *testing.T) {
	reg := BuildRegistry()
	root := reg.Root()
	if root.ID != RootID {
		t.Fatalf("expected root id %q, got %q", RootID, root.ID)
	}
	for _, id := range []string{"tabs", "wells"} {
		if _, ok := root.Children[id]; !ok {
			t.Fatalf("expected root child %q", id)
		}
	}
	tabs, ok := reg.Find("tabs")
	if !ok || tabs.Loader == nil {
		t.Fatalf("expected tabs node with loader")
	}
	for _, key := range []string{"new", "switch", "rename", "remove"} {
		child, ok := tabs.Children[key]
		if !ok {
			t.Fatalf("expected tabs child %q", key)
		}
		if child.Action == nil {
			t.Fatalf("expected action on tabs:%s", key)
		}
	}
	if tabs.Children["new"].Loader != nil {
		t.Fatalf("tabs:new should act immediately without a target list")
	}
	clear, ok := reg.Find("wells:clear")
	if !ok || clear.Loader == nil || clear.Action == nil {
		t.Fatalf("expected wells:clear with loader and action")
	}
}

func TestParentKey(t *testing.T) {
	cases := []struct{ id, parent, key string }{
		{"tabs", RootID, "tabs"},
		{"tabs:new", "tabs", "new"},
		{"wells:rename", "wells", "rename"},
	}
	for _, tc := range cases {
		parent, key := parentKey(tc.id)
		if parent != tc.parent || key != tc.key {
			t.Fatalf("parentKey(%q) = %q,%q want %q,%q", tc.id, parent, key, tc.parent, tc.key)
		}
	}
}

func TestPrettyLabel(t *testing.T) {
	if got := prettyLabel("switch"); got != "switch" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := prettyLabel("speed_rail-left"); got != "speed rail left" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestActionItemsLabelWithNoun(t *testing.T) {
	items := actionItems("well", "new", "clear")
	if len(items) != 2 || items[0].ID != "new" || items[1].Label != "clear well" {
		t.Fatalf("unexpected items %#v", items)
	}
}
