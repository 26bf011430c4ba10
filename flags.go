package axoplot

import (
	"fmt"
	"strconv"
)

// FloatArrayFlags collects repeated float-valued flags, e.g. a list of
// histogram bin edges. Defaults assigned to Array are discarded on the
// first explicit Set.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

// Set implements flag.Value.
func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

// StringArrayFlags collects repeated string-valued flags, e.g. a list of
// trigger paths. Defaults assigned to Array are discarded on the first
// explicit Set.
type StringArrayFlags struct {
	Array   []string
	beenSet bool
}

// Set implements flag.Value.
func (f *StringArrayFlags) Set(value string) error {
	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *StringArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}
