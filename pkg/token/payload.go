package token

// Version is the only payload version accepted by Unseal.
const Version = 1

// Payload is the content of a sealed session token.
type Payload struct {
	V        int   `json:"v"`
	Passed   bool  `json:"passed"`
	IssuedAt int64 `json:"iat"` // unix seconds
}

func (p Payload) valid() bool {
	return p.V == Version && p.Passed && p.IssuedAt > 0
}

// Status classifies the outcome of Unseal.
type Status int

const (
	// Malformed tokens cannot be parsed at all.
	Malformed Status = iota
	// Invalid tokens failed authentication under every secret, or carry an
	// authenticated payload of the wrong shape.
	Invalid
	// Expired tokens authenticated but are outside their validity window.
	Expired
	// Valid tokens carry a session payload.
	Valid
)

func (s Status) String() string {
	switch s {
	case Malformed:
		return "malformed"
	case Invalid:
		return "invalid"
	case Expired:
		return "expired"
	case Valid:
		return "valid"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of Unseal.
type Result struct {
	Status  Status
	payload Payload
}

// Payload returns the session payload. ok is false unless the status is Valid.
func (r Result) Payload() (Payload, bool) {
	if r.Status != Valid {
		return Payload{}, false
	}
	return r.payload, true
}

// OK reports whether the token is a valid session.
func (r Result) OK() bool {
	return r.Status == Valid
}
