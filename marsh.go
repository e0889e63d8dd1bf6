// This file implements encoding/decoding through the package codec.

package floatconv

import "fmt"

// A Float is a float64 whose text form goes through the package codec
// instead of the runtime's: fixed notation with two decimals out, strict
// parsing in.
type Float float64

// MarshalText implements the encoding.TextMarshaler interface.
func (x Float) MarshalText() (text []byte, err error) {
	return AppendFloat(nil, float64(x), 2, false)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Float) UnmarshalText(text []byte) error {
	f, err := ParseFloat(string(text))
	if err != nil {
		return fmt.Errorf("floatconv: cannot unmarshal %q into a floatconv.Float (%v)", text, err)
	}
	*z = Float(f)
	return nil
}
