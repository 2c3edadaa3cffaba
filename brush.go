package media

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidColorBrush: a single solid color
//
// Example usage:
//
//	pen := media.NewPen(media.NewSolidColorBrush(media.FromRgb(255, 0, 0)), 2)
//	pen := media.NewPen(media.KnownColorRed.Brush(), 2)
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float64) Color

	// Opacity returns the brush opacity in [0, 1].
	Opacity() float64
}

// SolidColorBrush is a single-color brush.
// A frozen brush is read-only and may be shared between goroutines.
type SolidColorBrush struct {
	color   Color
	opacity float64
	frozen  bool
}

// brushMarker implements the sealed Brush interface.
func (*SolidColorBrush) brushMarker() {}

// NewSolidColorBrush creates an unfrozen, fully opaque brush.
//
// Example:
//
//	brush := media.NewSolidColorBrush(media.FromArgb(128, 255, 0, 0))
func NewSolidColorBrush(c Color) *SolidColorBrush {
	return &SolidColorBrush{color: c, opacity: 1}
}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b *SolidColorBrush) ColorAt(_, _ float64) Color {
	return b.color
}

// Color returns the brush color.
func (b *SolidColorBrush) Color() Color {
	return b.color
}

// Opacity implements Brush.
func (b *SolidColorBrush) Opacity() float64 {
	return b.opacity
}

// SetColor changes the brush color. Frozen brushes return ErrFrozen.
func (b *SolidColorBrush) SetColor(c Color) error {
	if b.frozen {
		return ErrFrozen
	}
	b.color = c
	return nil
}

// SetOpacity changes the brush opacity. Frozen brushes return ErrFrozen.
func (b *SolidColorBrush) SetOpacity(opacity float64) error {
	if b.frozen {
		return ErrFrozen
	}
	b.opacity = opacity
	return nil
}

// Freeze makes the brush read-only.
func (b *SolidColorBrush) Freeze() {
	b.frozen = true
}

// IsFrozen reports whether the brush is read-only.
func (b *SolidColorBrush) IsFrozen() bool {
	return b.frozen
}

// Clone returns an unfrozen copy of the brush.
func (b *SolidColorBrush) Clone() *SolidColorBrush {
	return &SolidColorBrush{color: b.color, opacity: b.opacity}
}
