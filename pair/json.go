package pair

import (
	"encoding/json"

	"github.com/rustyeddy/tradedesk/numeric"
)

// UnmarshalJSON accepts numeric ids as written by older journals.
func (p *Pair) UnmarshalJSON(data []byte) error {
	type plain Pair
	aux := struct {
		*plain
		ID numeric.Text `json:"id"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = string(aux.ID)
	return nil
}
