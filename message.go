package gofetch

// scheduledMessage is the JSON envelope of an entry parked in a
// schedule set. Only the fields the fetcher inspects are declared;
// rescheduling and requeueing always reuse the original raw bytes, so
// any other fields pass through untouched.
type scheduledMessage struct {
	Queue      string        `json:"queue"`
	Class      string        `json:"class"`
	Args       []interface{} `json:"args"`
	JID        string        `json:"jid,omitempty"`
	Expiration float64       `json:"expiration,omitempty"`
	Cron       string        `json:"cron,omitempty"`
}
