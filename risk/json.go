package risk

import (
	"encoding/json"

	"github.com/rustyeddy/tradedesk/numeric"
)

// UnmarshalJSON accepts the shapes older journals wrote: numeric ids,
// and text or numbers interchangeably in the user-entered fields.
func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	aux := struct {
		*plain
		ID               numeric.Text `json:"id"`
		AccountSize      numeric.Int  `json:"accountSize"`
		Balance          numeric.Text `json:"balance"`
		RiskPercentage   numeric.Text `json:"riskPercentage"`
		RoundTo          numeric.Int  `json:"roundTo"`
		TargetRiskAmount numeric.Text `json:"targetRiskAmount"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.ID = string(aux.ID)
	a.AccountSize = AccountSize(aux.AccountSize)
	a.Balance = string(aux.Balance)
	a.RiskPercentage = string(aux.RiskPercentage)
	a.RoundTo = int(aux.RoundTo)
	a.TargetRiskAmount = string(aux.TargetRiskAmount)
	return nil
}
