package models

import "time"

type CaseResponse struct {
	ID             string         `json:"case_id"`
	Name           string         `json:"name"`
	Image          string         `json:"image"`
	Colors         []CaseColor    `json:"colors"`
	AvailableParts AvailableParts `json:"available_parts"`
	Price          int            `json:"price,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type CaseListResponse struct {
	Cases []CaseResponse `json:"cases"`
}

type PartResponse struct {
	ID              string       `json:"part_id"`
	Name            string       `json:"name"`
	Image           string       `json:"image"`
	Category        PartCategory `json:"category"`
	CompatibleCases []string     `json:"compatible_cases"`
	Price           int          `json:"price,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type PartListResponse struct {
	Parts []PartResponse `json:"parts"`
}

// StepResponse is one wizard screen. Kind is the stable machine key;
// Title is the human-readable label for rendering.
type StepResponse struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// SelectedPartResponse is the customer's current choice for a category.
type SelectedPartResponse struct {
	PartID string `json:"part_id"`
	Name   string `json:"name"`
}

// SelectionResponse mirrors the session's selection state.
type SelectionResponse struct {
	Color string                           `json:"color,omitempty"`
	Parts map[string]SelectedPartResponse `json:"parts"`
}

// LayerResponse is one image layer of the watch preview, ordered by
// ascending z-index.
type LayerResponse struct {
	Category string `json:"category"`
	Image    string `json:"image"`
	ZIndex   int    `json:"z_index"`
}

// SessionResponse is the full wizard state returned after every
// mutation so the client never has to derive it locally.
type SessionResponse struct {
	SessionID       string                    `json:"session_id"`
	Case            CaseResponse              `json:"case"`
	Steps           []StepResponse            `json:"steps"`
	CurrentStep     int                       `json:"current_step"`
	Selection       SelectionResponse         `json:"selection"`
	CompatibleParts map[string][]PartResponse `json:"compatible_parts"`
	TotalPrice      int                       `json:"total_price"`
	Layers          []LayerResponse           `json:"layers"`
}

type SubmitOrderResponse struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	TotalPrice int    `json:"total_price"`
}

type OrderResponse struct {
	ID            string            `json:"order_id"`
	Phone         string            `json:"phone"`
	ContactMethod string            `json:"contact_method"`
	Comment       string            `json:"comment,omitempty"`
	Components    OrderComponents   `json:"components"`
	ComponentIDs  OrderComponentIDs `json:"component_ids"`
	TotalPrice    int               `json:"total_price"`
	Status        string            `json:"status"`
	AdminNotes    string            `json:"admin_notes,omitempty"`
	StatusHistory []StatusEntry     `json:"status_history"`
	CreatedAt     time.Time         `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderSummary `json:"orders"`
}

type OrderSummary struct {
	ID         string    `json:"order_id"`
	Phone      string    `json:"phone"`
	CaseName   string    `json:"case_name"`
	TotalPrice int       `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type PageResponse struct {
	ID        string    `json:"page_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UploadResponse struct {
	URL  string `json:"url"`
	Host string `json:"host"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
