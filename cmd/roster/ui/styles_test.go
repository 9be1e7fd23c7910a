package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("ROSTER_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when ROSTER_DARK_MODE=1")
	}

	t.Setenv("ROSTER_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when ROSTER_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for black COLORFGBG background")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("ROSTER_DARK_MODE", "1")

	if ThemeFor("light").IsDark {
		t.Fatalf("explicit light theme should win over detection")
	}
	if !ThemeFor("dark").IsDark {
		t.Fatalf("expected dark theme")
	}
	if !ThemeFor("auto").IsDark {
		t.Fatalf("auto should fall back to detection")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := plain(s.RenderDivider(5)); got != "─────" {
		t.Fatalf("expected 5-cell divider, got %q", got)
	}
	if got := plain(s.RenderDivider(-3)); got != "" {
		t.Fatalf("negative width should render nothing, got %q", got)
	}
}
