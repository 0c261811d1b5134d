package table

import (
	"context"
	"time"

	"blackjackdealer-server/pkg/playable/blackjack"
)

const displayTokenLength = 24

// Table is a server-side blackjack game owned by a single caller
// The snapshot lives with the table so callers do not have to carry it between actions.
type Table struct {
	UUID string `json:"uuid"`
	// CallerID is who created the table
	CallerID string `json:"callerId"`
	Name     string `json:"name"`
	// DisplayToken grants read-only access to the table's event feed
	DisplayToken string               `json:"displayToken"`
	State        *blackjack.GameState `json:"-"`
	Created      time.Time            `json:"created"`
	Updated      time.Time            `json:"updated"`
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	cp := *t
	if t.State != nil {
		cp.State = t.State.Clone()
	}

	return &cp
}

// HandRecord is the settled result of a single hand at a table
type HandRecord struct {
	ID          int64     `json:"id"`
	TableUUID   string    `json:"tableUuid"`
	Bet         int       `json:"bet"`
	Payout      int       `json:"payout"`
	Outcome     string    `json:"outcome"`
	PlayerScore int       `json:"playerScore"`
	DealerScore int       `json:"dealerScore"`
	ChipsAfter  int       `json:"chipsAfter"`
	Created     time.Time `json:"created"`
}

// NewHandRecord builds the record for a resolved hand
func NewHandRecord(tableUUID string, r *blackjack.Resolution, chipsAfter int) *HandRecord {
	return &HandRecord{
		TableUUID:   tableUUID,
		Bet:         r.Bet,
		Payout:      r.Payout,
		Outcome:     r.Outcome.String(),
		PlayerScore: r.PlayerScore,
		DealerScore: r.DealerScore,
		ChipsAfter:  chipsAfter,
	}
}

// Store persists tables and their hand history
type Store interface {
	// CreateTable stores a new table for the caller with the given starting state
	CreateTable(ctx context.Context, callerID, name string, state *blackjack.GameState) (*Table, error)

	// GetTableByUUID returns ErrTableNotFound if the table does not exist
	GetTableByUUID(ctx context.Context, uuid string) (*Table, error)

	// GetTablesForCaller returns the caller's tables, newest first
	GetTablesForCaller(ctx context.Context, callerID string, offset int64, limit int) ([]*Table, error)

	// WithTable runs fn while holding the table's lock. At most one fn runs per table at a time.
	// The table's state is saved when fn returns nil and discarded otherwise.
	WithTable(ctx context.Context, uuid string, fn func(tbl *Table) error) error

	// RecordHand appends a hand to the table's history
	RecordHand(ctx context.Context, hand *HandRecord) error

	// GetHands returns the table's hand history, newest first
	GetHands(ctx context.Context, uuid string, offset int64, limit int) ([]*HandRecord, error)
}
