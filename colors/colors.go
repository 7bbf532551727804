// Package colors contains functions to quickly generate tetrabounds.Color instances by name, along with the palette used for debug
// plots of culling and ray test results.
package colors

import "github.com/solarlune/tetrabounds"

// Transparent generates a fully transparent tetrabounds.Color.
func Transparent() tetrabounds.Color {
	return tetrabounds.NewColor(0, 0, 0, 0)
}

// White generates a white tetrabounds.Color.
func White() tetrabounds.Color {
	return tetrabounds.NewColor(1, 1, 1, 1)
}

// Black generates a black tetrabounds.Color.
func Black() tetrabounds.Color {
	return tetrabounds.NewColor(0, 0, 0, 1)
}

// Gray generates a gray tetrabounds.Color.
func Gray() tetrabounds.Color {
	return tetrabounds.NewColor(0.5, 0.5, 0.5, 1)
}

// DarkestGray generates a nearly black tetrabounds.Color.
func DarkestGray() tetrabounds.Color {
	return tetrabounds.NewColor(0.05, 0.05, 0.05, 1)
}

// Red generates a red tetrabounds.Color.
func Red() tetrabounds.Color {
	return tetrabounds.NewColor(1, 0, 0, 1)
}

// Orange generates an orange tetrabounds.Color.
func Orange() tetrabounds.Color {
	return tetrabounds.NewColor(1, 0.5, 0, 1)
}

// Yellow generates a yellow tetrabounds.Color.
func Yellow() tetrabounds.Color {
	return tetrabounds.NewColor(1, 1, 0, 1)
}

// Green generates a green tetrabounds.Color.
func Green() tetrabounds.Color {
	return tetrabounds.NewColor(0, 1, 0, 1)
}

// SkyBlue generates a sky blue tetrabounds.Color.
func SkyBlue() tetrabounds.Color {
	return tetrabounds.NewColor(0, 0.5, 1, 1)
}

// Debug plot palette

// Background is the color debug plots are cleared to.
func Background() tetrabounds.Color {
	return DarkestGray()
}

// Grid is the color of the world-unit grid lines in debug plots.
func Grid() tetrabounds.Color {
	return Gray().WithAlpha(0.25)
}

// Visible is the color of objects that passed the frustum test.
func Visible() tetrabounds.Color {
	return Green().Mix(White(), 0.2).WithAlpha(0.6)
}

// Culled is the color of objects that failed the frustum test.
func Culled() tetrabounds.Color {
	return Red().Mix(Black(), 0.2).WithAlpha(0.4)
}

// Frustum is the color of the frustum's outline.
func Frustum() tetrabounds.Color {
	return SkyBlue()
}

// Ray is the color of rays and their hit markers.
func Ray() tetrabounds.Color {
	return Orange()
}

// Label is the color of text labels.
func Label() tetrabounds.Color {
	return White()
}
