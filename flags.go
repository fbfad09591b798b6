package sigmakit

import (
	"fmt"
	"strconv"
)

// EdgeListFlag collects a repeatable bin-edge flag into an ascending slice.
// Each value must lie strictly above the previous one; the first explicit Set
// discards any default edges.
type EdgeListFlag struct {
	Edges   []float64
	beenSet bool
}

// Set implements flag.Value.
func (f *EdgeListFlag) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}
	if !f.beenSet {
		f.beenSet = true
		f.Edges = nil
	}
	if n := len(f.Edges); n > 0 && value <= f.Edges[n-1] {
		return fmt.Errorf("edge %v is not above the previous edge %v", value, f.Edges[n-1])
	}
	f.Edges = append(f.Edges, value)
	return nil
}

// String implements flag.Value.
func (f *EdgeListFlag) String() string {
	return fmt.Sprint(f.Edges)
}
