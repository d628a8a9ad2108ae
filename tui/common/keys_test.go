package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ToggleHints.Keys()) == 0 || km.ToggleHints.Keys()[0] != "?" {
		t.Fatalf("expected ? key binding for hints")
	}
	if len(km.ForceQuit.Keys()) == 0 || km.ForceQuit.Keys()[0] != "ctrl+c" {
		t.Fatalf("expected ctrl+c force quit binding")
	}
	if km.NextRef.Keys()[0] != "tab" || km.PrevRef.Keys()[0] != "shift+tab" {
		t.Fatalf("expected tab bindings for quote previews")
	}
}

func TestDefaultKeyMap_HintsHaveHelp(t *testing.T) {
	for _, b := range DefaultKeyMap().Hints() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Fatalf("binding %v has no help text", b.Keys())
		}
	}
}
