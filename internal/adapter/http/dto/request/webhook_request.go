package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexibleID accepts both the string and the numeric form of a provider id.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// MercadoPagoNotification is the webhook body. The provider also repeats
// type and data.id in the query string.
type MercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID FlexibleID `json:"id"`
	} `json:"data"`
}

// Resolve prefers the query-string values, which are the ones the provider signs.
func (n MercadoPagoNotification) Resolve(queryType, queryDataID string) (kind, dataID string) {
	kind = strings.TrimSpace(queryType)
	if kind == "" {
		kind = strings.TrimSpace(n.Type)
	}
	dataID = strings.TrimSpace(queryDataID)
	if dataID == "" {
		dataID = strings.TrimSpace(string(n.Data.ID))
	}
	return kind, dataID
}
