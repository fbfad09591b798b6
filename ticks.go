// Package sigmakit provides the plot helpers shared by the analysis
// binaries.
package sigmakit

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks is a tick marker that picks round major-tick values without
// truncating their labels.
type PreciseTicks struct {
	NSuggestedTicks int
}

// Ticks implements plot.Ticker.
func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	n := t.NSuggestedTicks
	if n == 0 {
		n = 4
	}
	if max <= min {
		panic("sigmakit: illegal tick range")
	}

	step := math.Pow10(int(math.Floor(math.Log10(max - min))))
	for (max-min)/step < float64(n)-1 {
		step /= 10
	}
	mult := int((max - min) / step / float64(n-1))
	// 7 and 9 make for awkward minor-tick divisions.
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	major := float64(mult) * step

	var majors []float64
	for v := math.Floor(min/major) * major; v <= max; v += major {
		if v >= min {
			majors = append(majors, v)
		}
	}
	prec := int(math.Ceil(math.Log10(majors[len(majors)-1]+major)) - math.Floor(math.Log10(major)))

	var ticks []plot.Tick
	for _, v := range majors {
		v = roundPrec(v, prec)
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}

	minor := major / 2
	switch mult {
	case 3, 6:
		minor = major / 3
	case 5:
		minor = major / 5
	}
	for v := math.Floor(min/minor) * minor; v <= max; v += minor {
		if v < min {
			continue
		}
		labelled := false
		for _, t := range ticks {
			if t.Value == v {
				labelled = true
				break
			}
		}
		if !labelled {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

func roundPrec(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / pow
}

// LineColor returns the overlay line color for the i-th input file.
func LineColor(i int) color.RGBA {
	switch i {
	case 1:
		return color.RGBA{G: 255, A: 255}
	case 2:
		return color.RGBA{B: 255, A: 255}
	case 3:
		return color.RGBA{R: 255, B: 127, G: 127, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
