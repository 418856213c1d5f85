package orders

import (
	"regexp"
	"strings"
	"time"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

// phonePattern accepts Russian numbers: optional +7/7/8 prefix, a
// mobile or regional code starting with 4, 8, or 9, then the grouped
// national number. Spaces, dashes, and parentheses are tolerated.
var phonePattern = regexp.MustCompile(`^(\+7|7|8)?[\s\-]?\(?[489][0-9]{2}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}$`)

// ContactInfo holds the customer-entered fields from the final wizard
// step.
type ContactInfo struct {
	Phone         string
	ContactMethod string
	Comment       string
}

// Submitter persists an assembled order and returns its identifier.
// Implemented by the Supabase database client.
type Submitter interface {
	SubmitOrder(order *models.Order) (string, error)
}

// Assembler validates contact fields, snapshots the session into an
// order payload, and hands it to the submission collaborator. Single
// attempt: any resubmission is user-initiated.
type Assembler struct {
	submitter Submitter
}

func NewAssembler(submitter Submitter) *Assembler {
	return &Assembler{submitter: submitter}
}

// ValidateContact checks the customer contact fields. Phone is
// required and must match the national number shape; the remaining
// fields are optional.
func ValidateContact(contact ContactInfo) error {
	phone := strings.TrimSpace(contact.Phone)
	if phone == "" {
		return &customizer.ValidationError{Field: "phone", Message: "phone is required"}
	}
	if !phonePattern.MatchString(phone) {
		return &customizer.ValidationError{Field: "phone", Message: "phone does not match the expected format"}
	}
	return nil
}

// Assemble builds the order payload from a session without submitting
// it. Components are stored by display name for readable order records;
// catalog identifiers ride alongside for cross-referencing.
func Assemble(contact ContactInfo, session *customizer.Session) *models.Order {
	components := models.OrderComponents{
		CaseName: session.Case.Name,
		Color:    session.Selection.Color(),
	}
	ids := models.OrderComponentIDs{CaseID: session.Case.ID.String()}

	assign := func(category models.PartCategory, name *string, id *string) {
		if part, ok := session.Selection.Part(category); ok {
			*name = part.Name
			*id = part.PartID
		}
	}
	assign(models.CategoryDial, &components.Dial, &ids.DialID)
	assign(models.CategoryHands, &components.Hands, &ids.HandsID)
	assign(models.CategoryRotor, &components.Rotor, &ids.RotorID)
	assign(models.CategoryStrap, &components.Strap, &ids.StrapID)
	assign(models.CategoryBezel, &components.Bezel, &ids.BezelID)

	contactMethod := contact.ContactMethod
	if contactMethod == "" {
		contactMethod = models.ContactMethodPhone
	}

	return &models.Order{
		Phone:         strings.TrimSpace(contact.Phone),
		ContactMethod: contactMethod,
		Comment:       contact.Comment,
		Components:    components,
		ComponentIDs:  ids,
		TotalPrice:    session.Total(),
		Status:        models.OrderStatusNew,
		StatusHistory: []models.StatusEntry{{
			Status:    models.OrderStatusNew,
			Timestamp: time.Now(),
			Note:      "Заказ создан",
		}},
		CreatedAt: time.Now(),
	}
}

// Submit validates, assembles, and persists an order for the session.
// Validation failures never reach the submission collaborator; a
// collaborator failure surfaces as a SubmissionError with the original
// message intact.
func (a *Assembler) Submit(contact ContactInfo, session *customizer.Session) (string, error) {
	if err := ValidateContact(contact); err != nil {
		return "", err
	}

	order := Assemble(contact, session)
	orderID, err := a.submitter.SubmitOrder(order)
	if err != nil {
		return "", &customizer.SubmissionError{Err: err}
	}
	return orderID, nil
}
