package gofetch

import (
	"bytes"
	"encoding/json"
)

// Payload is the JSON body of a queued job.
type Payload struct {
	JID   string        `json:"jid,omitempty"`
	Class string        `json:"class"`
	Args  []interface{} `json:"args"`
}

func decodePayload(raw string, useNumber bool) (*Payload, error) {
	payload := &Payload{}
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if useNumber {
		decoder.UseNumber()
	}
	if err := decoder.Decode(payload); err != nil {
		return nil, err
	}
	return payload, nil
}
