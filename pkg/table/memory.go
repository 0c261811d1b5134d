package table

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/token"

	"github.com/google/uuid"
)

// MemoryStore keeps tables in process memory
// Nothing survives a restart. It is used for tests and for deployments without postgres.
type MemoryStore struct {
	lock   sync.RWMutex
	tables map[string]*memoryTable
	hands  map[string][]*HandRecord
	seq    int64
	handID int64
}

type memoryTable struct {
	// lock serializes WithTable calls for this table
	lock  sync.Mutex
	table *Table
	seq   int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]*memoryTable),
		hands:  make(map[string][]*HandRecord),
	}
}

// CreateTable stores a new table
func (m *MemoryStore) CreateTable(ctx context.Context, callerID, name string, state *blackjack.GameState) (*Table, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	displayToken, err := token.Generate(displayTokenLength)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tbl := &Table{
		UUID:         uuid.New().String(),
		CallerID:     callerID,
		Name:         name,
		DisplayToken: displayToken,
		State:        state.Clone(),
		Created:      now,
		Updated:      now,
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.seq++
	m.tables[tbl.UUID] = &memoryTable{table: tbl, seq: m.seq}

	return tbl.Clone(), nil
}

func (m *MemoryStore) get(uuid string) (*memoryTable, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	mt, found := m.tables[strings.ToLower(uuid)]
	if !found {
		return nil, ErrTableNotFound
	}

	return mt, nil
}

// GetTableByUUID returns a copy of the table
func (m *MemoryStore) GetTableByUUID(ctx context.Context, uuid string) (*Table, error) {
	mt, err := m.get(uuid)
	if err != nil {
		return nil, err
	}

	mt.lock.Lock()
	defer mt.lock.Unlock()

	return mt.table.Clone(), nil
}

// GetTablesForCaller returns the caller's tables, newest first
func (m *MemoryStore) GetTablesForCaller(ctx context.Context, callerID string, offset int64, limit int) ([]*Table, error) {
	m.lock.RLock()
	owned := make([]*memoryTable, 0)
	for _, mt := range m.tables {
		if mt.table.CallerID == callerID {
			owned = append(owned, mt)
		}
	}
	m.lock.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].seq > owned[j].seq
	})

	tables := make([]*Table, 0, limit)
	for i := offset; i < int64(len(owned)) && len(tables) < limit; i++ {
		owned[i].lock.Lock()
		tables = append(tables, owned[i].table.Clone())
		owned[i].lock.Unlock()
	}

	return tables, nil
}

// WithTable runs fn against a copy of the table while holding the table's lock
func (m *MemoryStore) WithTable(ctx context.Context, uuid string, fn func(tbl *Table) error) error {
	mt, err := m.get(uuid)
	if err != nil {
		return err
	}

	mt.lock.Lock()
	defer mt.lock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tbl := mt.table.Clone()
	if err := fn(tbl); err != nil {
		return err
	}

	tbl.Updated = time.Now().UTC()
	mt.table.State = tbl.State.Clone()
	mt.table.Updated = tbl.Updated
	return nil
}

// RecordHand appends a hand to the table's history
func (m *MemoryStore) RecordHand(ctx context.Context, hand *HandRecord) error {
	if _, err := m.get(hand.TableUUID); err != nil {
		return err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.handID++
	hand.ID = m.handID
	hand.Created = time.Now().UTC()

	cp := *hand
	key := strings.ToLower(hand.TableUUID)
	m.hands[key] = append(m.hands[key], &cp)
	return nil
}

// GetHands returns the table's hand history, newest first
func (m *MemoryStore) GetHands(ctx context.Context, uuid string, offset int64, limit int) ([]*HandRecord, error) {
	if _, err := m.get(uuid); err != nil {
		return nil, err
	}

	m.lock.RLock()
	defer m.lock.RUnlock()

	all := m.hands[strings.ToLower(uuid)]
	hands := make([]*HandRecord, 0, limit)
	for i := int64(len(all)) - 1 - offset; i >= 0 && len(hands) < limit; i-- {
		cp := *all[i]
		hands = append(hands, &cp)
	}

	return hands, nil
}
