package numeric

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Text is a string that also decodes from a JSON number, keeping the
// number's literal form. null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// Int is an int that also decodes from a JSON string. Fractions are
// truncated; text that is not a number, or does not fit an int, decodes
// to 0.
type Int int

var (
	minInt = decimal.NewFromInt(int64(math.MinInt))
	maxInt = decimal.NewFromInt(int64(math.MaxInt))
)

func (i *Int) UnmarshalJSON(data []byte) error {
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	d := Decimal(string(t)).Truncate(0)
	if d.LessThan(minInt) || d.GreaterThan(maxInt) {
		*i = 0
		return nil
	}
	*i = Int(d.IntPart())
	return nil
}
