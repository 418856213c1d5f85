package supabase

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

const orderColumns = `id, phone, contact_method, comment, components, component_ids, total_price, status, admin_notes, status_history, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var (
		order          models.Order
		componentsJSON []byte
		idsJSON        []byte
		historyJSON    []byte
	)
	err := row.Scan(
		&order.ID, &order.Phone, &order.ContactMethod, &order.Comment,
		&componentsJSON, &idsJSON, &order.TotalPrice, &order.Status,
		&order.AdminNotes, &historyJSON, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(componentsJSON) > 0 {
		if err := json.Unmarshal(componentsJSON, &order.Components); err != nil {
			return nil, fmt.Errorf("failed to decode order components: %w", err)
		}
	}
	if len(idsJSON) > 0 {
		if err := json.Unmarshal(idsJSON, &order.ComponentIDs); err != nil {
			return nil, fmt.Errorf("failed to decode order component ids: %w", err)
		}
	}
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &order.StatusHistory); err != nil {
			return nil, fmt.Errorf("failed to decode order status history: %w", err)
		}
	}
	return &order, nil
}

// SubmitOrder persists a newly assembled order and returns its
// identifier. Implements the order submission collaborator for the
// customization wizard.
func (d *DatabaseClient) SubmitOrder(order *models.Order) (string, error) {
	componentsJSON, _ := json.Marshal(order.Components)
	idsJSON, _ := json.Marshal(order.ComponentIDs)
	historyJSON, _ := json.Marshal(order.StatusHistory)

	var id uuid.UUID
	err := d.db.QueryRow(`
		INSERT INTO orders (phone, contact_method, comment, components, component_ids, total_price, status, status_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, order.Phone, order.ContactMethod, order.Comment,
		componentsJSON, idsJSON, order.TotalPrice, order.Status, historyJSON,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to submit order: %w", err)
	}
	return id.String(), nil
}

func (d *DatabaseClient) GetOrder(orderID string) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, &customizer.NotFoundError{Resource: "order", Key: orderID}
	}

	row := d.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &customizer.NotFoundError{Resource: "order", Key: orderID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (d *DatabaseClient) ListOrders() ([]models.Order, error) {
	rows, err := d.db.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus transitions an order and appends a history entry.
// The history is read, extended, and written back whole, matching how
// the admin dashboard consumes it.
func (d *DatabaseClient) UpdateOrderStatus(orderID, status, note string) (*models.Order, error) {
	order, err := d.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if note == "" {
		note = fmt.Sprintf("Статус изменен на %q", status)
	}
	order.StatusHistory = append(order.StatusHistory, models.StatusEntry{
		Status:    status,
		Timestamp: time.Now(),
		Note:      note,
	})
	historyJSON, _ := json.Marshal(order.StatusHistory)

	_, err = d.db.Exec(`
		UPDATE orders SET status = $1, status_history = $2 WHERE id = $3
	`, status, historyJSON, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = status
	return order, nil
}

func (d *DatabaseClient) SetOrderNotes(orderID, notes string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}
	_, err = d.db.Exec(`UPDATE orders SET admin_notes = $1 WHERE id = $2`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to set order notes: %w", err)
	}
	return nil
}

func (d *DatabaseClient) DeleteOrder(orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}
	_, err = d.db.Exec(`DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
