package ink

// Pen width never drops below this regardless of pressure, so strokes stay
// visible at the lightest touch.
const minPenWidth = 0.5

// Multiplier ranges at the two ends of the base-width scale. A ~1px pencil
// reacts dramatically to pressure while a ~50px marker stays visually stable.
const (
	thinBase  = 1.0
	thickBase = 50.0

	thinMinMul  = 0.2
	thinMaxMul  = 6.0
	thickMinMul = 0.3
	thickMaxMul = 2.0
)

// WidthFor maps a pressure sample in [0,1] and a base pen width to the
// rendered stroke width at that sample.
func WidthFor(pressure, base float32) float32 {
	w := base * widthScale(pressure, base)
	if w < minPenWidth {
		return minPenWidth
	}
	return w
}

// widthScale interpolates between the base-dependent minimum and maximum
// pressure multipliers.
func widthScale(pressure, base float32) float32 {
	if pressure < 0 {
		pressure = 0
	}
	if pressure > 1 {
		pressure = 1
	}
	t := (base - thinBase) / (thickBase - thinBase)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	minMul := thinMinMul + t*(thickMinMul-thinMinMul)
	maxMul := thinMaxMul + t*(thickMaxMul-thinMaxMul)
	return minMul + pressure*(maxMul-minMul)
}

// constantWidth is the rendered width of a stroke without pressure data.
func constantWidth(base float32) float32 {
	if base < minPenWidth {
		return minPenWidth
	}
	return base
}
