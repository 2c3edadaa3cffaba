package media

import (
	"sync"
	"testing"
)

func TestKnownColors(t *testing.T) {
	if n := len(KnownColors()); n != 141 {
		t.Errorf("len(KnownColors()) = %d, want 141", n)
	}

	tests := []struct {
		k    KnownColor
		name string
		argb uint32
	}{
		{KnownColorAliceBlue, "AliceBlue", 0xFFF0F8FF},
		{KnownColorTransparent, "Transparent", 0x00FFFFFF},
		{KnownColorAqua, "Aqua", 0xFF00FFFF},
		{KnownColorCyan, "Cyan", 0xFF00FFFF},
		{KnownColorYellowGreen, "YellowGreen", 0xFF9ACD32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.k.ARGB(); got != tt.argb {
				t.Errorf("ARGB() = %#x, want %#x", got, tt.argb)
			}
			if !tt.k.Color().Equal(FromUInt32(tt.argb)) {
				t.Errorf("Color() = %v", tt.k.Color())
			}
		})
	}

	if got := KnownColor(-1).String(); got != "Unknown" {
		t.Errorf("invalid String() = %q", got)
	}
	if got := KnownColor(1000).ARGB(); got != 0 {
		t.Errorf("invalid ARGB() = %#x", got)
	}
}

func TestKnownColorFromName(t *testing.T) {
	for _, name := range []string{"CornflowerBlue", "cornflowerblue", " CORNFLOWERBLUE "} {
		k, ok := KnownColorFromName(name)
		if !ok || k != KnownColorCornflowerBlue {
			t.Errorf("KnownColorFromName(%q) = %v, %v", name, k, ok)
		}
	}
	if _, ok := KnownColorFromName("Octarine"); ok {
		t.Error("KnownColorFromName found an unknown name")
	}
}

func TestKnownColorBrush(t *testing.T) {
	b := KnownColorRed.Brush()
	if !b.IsFrozen() {
		t.Error("known color brush is not frozen")
	}
	if err := b.SetColor(FromRgb(0, 0, 0)); err == nil {
		t.Error("SetColor on a cached brush succeeded")
	}
	if KnownColorRed.Brush() != b {
		t.Error("Brush() returned a new instance")
	}
	// Aliases share the brush.
	if KnownColorAqua.Brush() != KnownColorCyan.Brush() {
		t.Error("Aqua and Cyan brushes differ")
	}
	if KnownColorBlue.Brush() == b {
		t.Error("Blue shares the Red brush")
	}
	if b.Color().UInt32() != 0xFFFF0000 || b.Opacity() != 1 {
		t.Errorf("brush color=%v opacity=%v", b.Color(), b.Opacity())
	}
}

func TestKnownColorBrushConcurrent(t *testing.T) {
	const goroutines = 32
	got := make([]*SolidColorBrush, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = KnownColorPapayaWhip.Brush()
		}()
	}
	wg.Wait()
	for i, b := range got {
		if b != got[0] {
			t.Fatalf("goroutine %d got a different brush", i)
		}
	}
}
