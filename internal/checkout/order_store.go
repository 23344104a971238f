package checkout

import (
	"context"
	"database/sql"
	"sync"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

// OrderStore records submissions and the email-dispatch progress of each
// order.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order, lines []models.OrderLine) error
	SetEmailState(ctx context.Context, reference, state string) error
}

// MySQLOrderStore persists orders to the 'orders' and 'order_lines'
// tables in one transaction.
type MySQLOrderStore struct {
	DB *sql.DB
}

func NewMySQLOrderStore(db *sql.DB) *MySQLOrderStore {
	return &MySQLOrderStore{DB: db}
}

func (s *MySQLOrderStore) Create(ctx context.Context, order *models.Order, lines []models.OrderLine) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders
			(reference, first_name, last_name, email, phone,
			 street, city, zip, note, realization, project_desc,
			 total, currency, email_state, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.Reference, order.FirstName, order.LastName, order.Email, order.Phone,
		order.Street, order.City, order.Zip, order.Note, order.Realization, order.ProjectDesc,
		order.Total, order.Currency, order.EmailState, order.CreatedAt)
	if err != nil {
		return err
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = orderID

	for i := range lines {
		lines[i].OrderID = orderID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, product_slug, quantity, price)
			VALUES (?, ?, ?, ?)`,
			orderID, lines[i].ProductSlug, lines[i].Quantity, lines[i].Price)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *MySQLOrderStore) SetEmailState(ctx context.Context, reference, state string) error {
	_, err := s.DB.ExecContext(ctx,
		"UPDATE orders SET email_state = ? WHERE reference = ?", state, reference)
	return err
}

// MemoryOrderStore keeps orders in memory. Used by tests and when no
// database is configured.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	lines  map[string][]models.OrderLine
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{lines: make(map[string][]models.OrderLine)}
}

func (s *MemoryOrderStore) Create(ctx context.Context, order *models.Order, lines []models.OrderLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = int64(len(s.orders) + 1)
	s.orders = append(s.orders, *order)
	s.lines[order.Reference] = append([]models.OrderLine(nil), lines...)
	return nil
}

func (s *MemoryOrderStore) SetEmailState(ctx context.Context, reference, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].Reference == reference {
			s.orders[i].EmailState = state
		}
	}
	return nil
}

// Orders returns a copy of the recorded orders.
func (s *MemoryOrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Order(nil), s.orders...)
}
