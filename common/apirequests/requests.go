package apirequests

import "encoding/json"

// InsertCoinRequest is the body of POST /insert-coin. Coin stays raw so that
// both JSON numbers and numeric strings are accepted and a missing value can
// be told apart from a malformed one.
type InsertCoinRequest struct {
	Coin json.RawMessage `json:"coin"`
}

// CoinValue returns the textual coin value, or "" when it was absent or null.
func (r InsertCoinRequest) CoinValue() string {
	if len(r.Coin) == 0 || string(r.Coin) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Coin, &s); err == nil {
		return s
	}
	return string(r.Coin)
}
