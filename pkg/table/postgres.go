package table

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"blackjackdealer-server/pkg/db"
	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const tableColumns = `
tables.uuid,
tables.caller_id,
tables.name,
tables.display_token,
tables.state,
tables.created,
tables.updated`

const handColumns = `
hands.id,
hands.table_uuid,
hands.bet,
hands.payout,
hands.outcome,
hands.player_score,
hands.dealer_score,
hands.chips_after,
hands.created`

// PGStore keeps tables in postgres
type PGStore struct {
	db *sql.DB
}

var _ Store = (*PGStore)(nil)

// NewPGStore returns a store backed by the database handle
func NewPGStore(dbh *sql.DB) *PGStore {
	return &PGStore{db: dbh}
}

// CreateTable creates a new table
func (p *PGStore) CreateTable(ctx context.Context, callerID, name string, state *blackjack.GameState) (*Table, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	displayToken, err := token.Generate(displayTokenLength)
	if err != nil {
		return nil, err
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO tables (uuid, caller_id, name, display_token, state)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tableColumns

	row := p.db.QueryRowContext(ctx, query, u, callerID, name, displayToken, stateJSON)
	return getTableByRow(row)
}

func getTableByRow(row db.Scanner) (*Table, error) {
	var t Table
	var state []byte
	if err := row.Scan(&t.UUID, &t.CallerID, &t.Name, &t.DisplayToken, &state, &t.Created, &t.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}

		return nil, err
	}

	gs, err := blackjack.ParseGameState(state)
	if err != nil {
		return nil, err
	}

	t.State = gs
	return &t, nil
}

// GetTableByUUID returns a table by its UUID
func (p *PGStore) GetTableByUUID(ctx context.Context, uuid string) (*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE uuid = $1`

	if !isUUID(uuid) {
		return nil, ErrTableNotFound
	}

	row := p.db.QueryRowContext(ctx, query, uuid)
	return getTableByRow(row)
}

// GetTablesForCaller returns the caller's tables, newest first
func (p *PGStore) GetTablesForCaller(ctx context.Context, callerID string, offset int64, limit int) ([]*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE caller_id = $1
ORDER BY created DESC, uuid
OFFSET $2
LIMIT $3`

	rows, err := p.db.QueryContext(ctx, query, callerID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]*Table, 0)
	for rows.Next() {
		tbl, err := getTableByRow(rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, tbl)
	}

	return tables, rows.Err()
}

// WithTable locks the table's row for the duration of fn
func (p *PGStore) WithTable(ctx context.Context, uuid string, fn func(tbl *Table) error) error {
	if !isUUID(uuid) {
		return ErrTableNotFound
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE uuid = $1
FOR UPDATE`

	tbl, err := getTableByRow(tx.QueryRowContext(ctx, query, uuid))
	if err != nil {
		rollback(tx)
		return err
	}

	if err := fn(tbl); err != nil {
		rollback(tx)
		return err
	}

	stateJSON, err := json.Marshal(tbl.State)
	if err != nil {
		rollback(tx)
		return err
	}

	const update = `
UPDATE tables
SET state = $1, updated = $2
WHERE uuid = $3`

	if _, err := tx.ExecContext(ctx, update, stateJSON, time.Now().In(time.UTC), uuid); err != nil {
		rollback(tx)
		return err
	}

	return tx.Commit()
}

// RecordHand appends a hand to the table's history
func (p *PGStore) RecordHand(ctx context.Context, hand *HandRecord) error {
	const query = `
INSERT INTO hands (table_uuid, bet, payout, outcome, player_score, dealer_score, chips_after)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created`

	row := p.db.QueryRowContext(ctx, query, hand.TableUUID, hand.Bet, hand.Payout, hand.Outcome, hand.PlayerScore, hand.DealerScore, hand.ChipsAfter)
	return row.Scan(&hand.ID, &hand.Created)
}

// GetHands returns the table's hand history, newest first
func (p *PGStore) GetHands(ctx context.Context, uuid string, offset int64, limit int) ([]*HandRecord, error) {
	if _, err := p.GetTableByUUID(ctx, uuid); err != nil {
		return nil, err
	}

	const query = `
SELECT ` + handColumns + `
FROM hands
WHERE table_uuid = $1
ORDER BY id DESC
OFFSET $2
LIMIT $3`

	rows, err := p.db.QueryContext(ctx, query, uuid, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hands := make([]*HandRecord, 0)
	for rows.Next() {
		var h HandRecord
		if err := rows.Scan(&h.ID, &h.TableUUID, &h.Bet, &h.Payout, &h.Outcome, &h.PlayerScore, &h.DealerScore, &h.ChipsAfter, &h.Created); err != nil {
			return nil, err
		}

		hands = append(hands, &h)
	}

	return hands, rows.Err()
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
