package domain

// PlayType identifies how a play is priced.
type PlayType string

const (
	PlayTypeTragedy PlayType = "tragedy"
	PlayTypeComedy  PlayType = "comedy"
)

// ValidPlayTypes enumerates all recognized play types.
var ValidPlayTypes = []PlayType{
	PlayTypeTragedy,
	PlayTypeComedy,
}

// IsValid reports whether t is one of the recognized play types.
func (t PlayType) IsValid() bool {
	for _, v := range ValidPlayTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Cents is an amount of money in US cents.
type Cents int64

// Play is static reference data describing what was performed.
type Play struct {
	Name string   `json:"name" yaml:"name" validate:"required"`
	Type PlayType `json:"type" yaml:"type" validate:"required"`
}

// Performance is one priced occurrence of a play.
type Performance struct {
	PlayID   string `json:"playID"   yaml:"playID"   validate:"required"`
	Audience int    `json:"audience" yaml:"audience"`
}

// Invoice is a customer's bill. Performance order is statement line order.
type Invoice struct {
	Customer     string        `json:"customer"     yaml:"customer"     validate:"required"`
	Performances []Performance `json:"performances" yaml:"performances" validate:"dive"`
}

// Plays maps a play identifier to its Play.
type Plays map[string]Play

// Lookup resolves the play referenced by a performance.
func (p Plays) Lookup(playID string) (Play, error) {
	play, ok := p[playID]
	if !ok {
		return Play{}, &PlayNotFoundError{PlayID: playID}
	}
	return play, nil
}

// StatementLine is the priced detail of a single performance.
type StatementLine struct {
	PlayID   string   `json:"play_id"`
	PlayName string   `json:"play_name"`
	PlayType PlayType `json:"play_type"`
	Audience int      `json:"audience"`
	Amount   Cents    `json:"amount"`
	Credits  int      `json:"credits"`
}

// Statement is a fully priced invoice, lines in invoice order.
type Statement struct {
	Customer     string          `json:"customer"`
	Lines        []StatementLine `json:"lines"`
	TotalAmount  Cents           `json:"total_amount"`
	TotalCredits int             `json:"total_credits"`
}

// Quote is the price of a single performance outside any invoice.
type Quote struct {
	PlayType PlayType `json:"play_type"`
	Audience int      `json:"audience"`
	Amount   Cents    `json:"amount"`
	Credits  int      `json:"credits"`
}
