package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

// Persistence loads and saves the serialized line-item snapshot of one
// cart. The store calls Save after every mutation, so an implementation
// only ever has to deal with full snapshots.
type Persistence interface {
	Load(ctx context.Context, key string) ([]models.CartItem, error)
	Save(ctx context.Context, key string, items []models.CartItem) error
}

// MySQLPersistence stores cart snapshots as JSON in the 'cart_snapshots'
// table, one row per cart key.
type MySQLPersistence struct {
	DB *sql.DB
}

func NewMySQLPersistence(db *sql.DB) *MySQLPersistence {
	return &MySQLPersistence{DB: db}
}

func (p *MySQLPersistence) Load(ctx context.Context, key string) ([]models.CartItem, error) {
	var raw []byte
	err := p.DB.QueryRowContext(ctx,
		"SELECT items FROM cart_snapshots WHERE cart_key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil // no cart yet, treat as empty
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *MySQLPersistence) Save(ctx context.Context, key string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = p.DB.ExecContext(ctx, `
		INSERT INTO cart_snapshots (cart_key, items, updated_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			items = VALUES(items),
			updated_at = VALUES(updated_at)`,
		key, raw, time.Now())
	return err
}

// MemoryPersistence keeps snapshots in a map. Used by tests and as a
// fallback when no database is configured.
type MemoryPersistence struct {
	mu        sync.Mutex
	snapshots map[string][]models.CartItem
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{snapshots: make(map[string][]models.CartItem)}
}

func (p *MemoryPersistence) Load(ctx context.Context, key string) ([]models.CartItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	items, ok := p.snapshots[key]
	if !ok {
		return nil, nil
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (p *MemoryPersistence) Save(ctx context.Context, key string, items []models.CartItem) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := make([]models.CartItem, len(items))
	copy(snap, items)
	p.snapshots[key] = snap
	return nil
}
