package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Order statuses, mirrored by the admin dashboard.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Contact channels a customer may prefer for the follow-up call.
const (
	ContactMethodPhone    = "phone"
	ContactMethodTelegram = "telegram"
	ContactMethodWhatsApp = "whatsapp"
	ContactMethodViber    = "viber"
)

// OrderComponents is the denormalized snapshot of the customer's build,
// stored by display name so the order record reads without catalog joins.
type OrderComponents struct {
	CaseName string `json:"case_name"`
	Color    string `json:"color"`
	Dial     string `json:"dial,omitempty"`
	Hands    string `json:"hands,omitempty"`
	Rotor    string `json:"rotor,omitempty"`
	Strap    string `json:"strap,omitempty"`
	Bezel    string `json:"bezel,omitempty"`
}

// OrderComponentIDs carries the catalog identifiers alongside the name
// snapshot so administrators can cross-reference parts after a rename.
type OrderComponentIDs struct {
	CaseID  string `json:"case_id"`
	DialID  string `json:"dial_id,omitempty"`
	HandsID string `json:"hands_id,omitempty"`
	RotorID string `json:"rotor_id,omitempty"`
	StrapID string `json:"strap_id,omitempty"`
	BezelID string `json:"bezel_id,omitempty"`
}

// StatusEntry is one line of an order's status history.
type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// Order is a submitted customization order. Created once per successful
// submission; afterwards mutated only by administrator actions.
type Order struct {
	ID            uuid.UUID
	Phone         string
	ContactMethod string
	Comment       string
	Components    OrderComponents
	ComponentIDs  OrderComponentIDs
	TotalPrice    int
	Status        string
	AdminNotes    sql.NullString
	StatusHistory []StatusEntry
	CreatedAt     time.Time
}
