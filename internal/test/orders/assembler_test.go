package orders_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/orders"
)

type spySubmitter struct {
	order *models.Order
	id    string
	err   error
	calls int
}

func (s *spySubmitter) SubmitOrder(order *models.Order) (string, error) {
	s.calls++
	s.order = order
	return s.id, s.err
}

func testSession() *customizer.Session {
	watchCase := &models.WatchCase{
		ID:   uuid.New(),
		Name: "Speedmaster",
		Colors: []models.CaseColor{
			{Name: "Черный", Image: "black.png"},
		},
		AvailableParts: models.AvailableParts{Dials: true, Straps: true},
		Price:          20000,
	}
	parts := map[models.PartCategory][]models.WatchPart{
		models.CategoryDial: {{
			ID:              uuid.New(),
			Name:            "Синий циферблат",
			Category:        models.CategoryDial,
			CompatibleCases: []string{"Speedmaster"},
			Price:           500,
		}},
		models.CategoryStrap: {{
			ID:              uuid.New(),
			Name:            "Кожаный ремешок",
			Category:        models.CategoryStrap,
			CompatibleCases: []string{"Speedmaster"},
			Price:           1200,
		}},
	}
	return customizer.NewSession(watchCase, parts)
}

func TestValidateContact(t *testing.T) {
	valid := []string{
		"+7 905 123 45 67",
		"89051234567",
		"8 (905) 123-45-67",
		"905 123 45 67",
	}
	for _, phone := range valid {
		assert.NoError(t, orders.ValidateContact(orders.ContactInfo{Phone: phone}), phone)
	}

	invalid := []string{
		"",
		"   ",
		"12345",
		"+1 212 555 0100",
		"not a phone",
	}
	for _, phone := range invalid {
		err := orders.ValidateContact(orders.ContactInfo{Phone: phone})
		var validation *customizer.ValidationError
		assert.ErrorAs(t, err, &validation, phone)
		assert.Equal(t, "phone", validation.Field)
	}
}

func TestAssemble(t *testing.T) {
	session := testSession()
	contact := orders.ContactInfo{Phone: " +7 905 123 45 67 ", Comment: "побыстрее"}

	order := orders.Assemble(contact, session)

	assert.Equal(t, "+7 905 123 45 67", order.Phone)
	assert.Equal(t, models.ContactMethodPhone, order.ContactMethod, "contact method defaults to phone")
	assert.Equal(t, "Speedmaster", order.Components.CaseName)
	assert.Equal(t, "Черный", order.Components.Color)
	assert.Equal(t, "Синий циферблат", order.Components.Dial)
	assert.Equal(t, "Кожаный ремешок", order.Components.Strap)
	assert.Empty(t, order.Components.Bezel)
	assert.Equal(t, session.Case.ID.String(), order.ComponentIDs.CaseID)
	assert.Equal(t, 21700, order.TotalPrice)
	assert.Equal(t, models.OrderStatusNew, order.Status)

	assert.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.OrderStatusNew, order.StatusHistory[0].Status)
	assert.Equal(t, "Заказ создан", order.StatusHistory[0].Note)
}

func TestSubmit(t *testing.T) {
	submitter := &spySubmitter{id: "order-123"}
	assembler := orders.NewAssembler(submitter)

	orderID, err := assembler.Submit(orders.ContactInfo{Phone: "+7 905 123 45 67", ContactMethod: models.ContactMethodTelegram}, testSession())

	assert.NoError(t, err)
	assert.Equal(t, "order-123", orderID)
	assert.Equal(t, 1, submitter.calls)
	assert.Equal(t, models.ContactMethodTelegram, submitter.order.ContactMethod)
}

func TestSubmit_ValidationNeverReachesSubmitter(t *testing.T) {
	submitter := &spySubmitter{id: "order-123"}
	assembler := orders.NewAssembler(submitter)

	_, err := assembler.Submit(orders.ContactInfo{Phone: ""}, testSession())

	var validation *customizer.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, 0, submitter.calls)
}

func TestSubmit_SubmitterFailure(t *testing.T) {
	submitter := &spySubmitter{err: assert.AnError}
	assembler := orders.NewAssembler(submitter)

	_, err := assembler.Submit(orders.ContactInfo{Phone: "+7 905 123 45 67"}, testSession())

	var submission *customizer.SubmissionError
	assert.ErrorAs(t, err, &submission)
	assert.ErrorIs(t, err, assert.AnError)
}
