package model

// Verdict is the terminal classification of a claim
type Verdict string

const (
	VerdictTrue       Verdict = "TRUE"
	VerdictFalse      Verdict = "FALSE"
	VerdictUnverified Verdict = "UNVERIFIED"
)

// Color maps a verdict to the traffic-light color used by the public
// verification output shape
func (v Verdict) Color() string {
	switch v {
	case VerdictTrue:
		return "green"
	case VerdictFalse:
		return "red"
	default:
		return "yellow"
	}
}

// StructuredVerdict is the wire shape returned when a remote provider is
// asked to judge a claim directly. Status values mirror Verdict but are
// lowercased on the wire.
type StructuredVerdict struct {
	Status         string  `json:"status"`
	Color          string  `json:"color"`
	Message        string  `json:"message"`
	OfficialSource *string `json:"official_source"`
}

// UnavailableVerdict is the fixed response emitted when no provider could
// produce a structured opinion. It never fails.
func UnavailableVerdict(message string) StructuredVerdict {
	return StructuredVerdict{
		Status:         "unverified",
		Color:          "yellow",
		Message:        message,
		OfficialSource: nil,
	}
}
