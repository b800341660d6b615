package ui

import (
	"reflect"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayToggle(t *testing.T) {
	reg := NewOverlayRegistry()

	if reg.IsEnabled(OverlayVelocity) {
		t.Fatal("overlays should start disabled")
	}
	if !reg.Toggle(OverlayVelocity) {
		t.Error("first toggle should enable")
	}
	if reg.Toggle(OverlayVelocity) {
		t.Error("second toggle should disable")
	}
	if reg.Toggle("missing") {
		t.Error("unknown overlay should not toggle")
	}
}

func TestOverlayExclusive(t *testing.T) {
	reg := NewOverlayRegistry()

	reg.SetEnabled(OverlayAnchors, true)
	reg.Toggle(OverlaySprings)

	if reg.IsEnabled(OverlayAnchors) {
		t.Error("enabling springs should disable anchors")
	}
	if !reg.IsEnabled(OverlaySprings) {
		t.Error("springs should be enabled")
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, ok := reg.HandleKeyPress(rl.KeyR)
	if !ok || id != OverlayReach || !on {
		t.Errorf("HandleKeyPress(R) = %q, %v, %v", id, on, ok)
	}
	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not toggle")
	}
}

func TestOverlayCategories(t *testing.T) {
	reg := NewOverlayRegistry()

	if got, want := reg.Categories(), []string{"field", "cursor"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if n := len(reg.ByCategory("field")); n != 3 {
		t.Errorf("field overlays = %d, want 3", n)
	}

	reg.SetEnabled(OverlayReach, true)
	reg.SetEnabled(OverlayAnchors, true)
	if got, want := reg.EnabledOverlays(), []OverlayID{OverlayAnchors, OverlayReach}; !reflect.DeepEqual(got, want) {
		t.Errorf("EnabledOverlays() = %v, want %v", got, want)
	}
}
