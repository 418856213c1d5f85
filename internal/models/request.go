package models

// CreateSessionRequest starts a customization session for a case.
type CreateSessionRequest struct {
	CaseID string `json:"case_id" example:"6f1c9c0a-8f3e-4f1a-9c2b-0d4e5a6b7c8d"`
}

// SelectColorRequest picks a case color variant by name.
type SelectColorRequest struct {
	Color string `json:"color" example:"Черный"`
}

// SelectPartRequest picks a part for one category. The part must be in
// the session's compatible set for that category.
type SelectPartRequest struct {
	Category PartCategory `json:"category" example:"dial"`
	PartID   string       `json:"part_id"`
}

// SubmitOrderRequest carries the customer contact fields entered on the
// final wizard step. Phone is required; everything else is optional.
type SubmitOrderRequest struct {
	Phone         string `json:"phone" example:"+7 905 123 45 67"`
	ContactMethod string `json:"contact_method,omitempty" example:"telegram"`
	Comment       string `json:"comment,omitempty"`
}

// CaseRequest is the admin payload for creating or updating a case.
type CaseRequest struct {
	Name           string      `json:"name"`
	Image          string      `json:"image"`
	Colors         []CaseColor `json:"colors"`
	AvailableParts struct {
		Dials  bool `json:"has_dials"`
		Hands  bool `json:"has_hands"`
		Rotors bool `json:"has_rotors"`
		Straps bool `json:"has_straps"`
		Bezel  bool `json:"has_bezel"`
	} `json:"available_parts"`
	Price int `json:"price,omitempty"`
}

// PartRequest is the admin payload for creating or updating a part.
type PartRequest struct {
	Name            string       `json:"name"`
	Image           string       `json:"image"`
	Category        PartCategory `json:"category"`
	CompatibleCases []string     `json:"compatible_cases"`
	Price           int          `json:"price,omitempty"`
}

// OrderStatusRequest transitions an order to a new status, with an
// optional note appended to the status history.
type OrderStatusRequest struct {
	Status string `json:"status" example:"processing"`
	Note   string `json:"note,omitempty"`
}

// OrderNoteRequest attaches an administrator note to an order.
type OrderNoteRequest struct {
	Note string `json:"note"`
}

// PageRequest upserts a static content page.
type PageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ErrorResponse is the common error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
