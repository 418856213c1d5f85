package customizer

import "watch-atelier-backend/internal/models"

// StepKind enumerates the wizard screens. Control flow branches on the
// kind, never on the display title.
type StepKind string

const (
	StepColor StepKind = "color"
	StepDial  StepKind = "dial"
	StepHands StepKind = "hands"
	StepRotor StepKind = "rotor"
	StepStrap StepKind = "strap"
	StepBezel StepKind = "bezel"
	StepOrder StepKind = "order"
)

// stepTitles maps kinds to the labels shown to the customer. Pure
// presentation: nothing dispatches on these strings.
var stepTitles = map[StepKind]string{
	StepColor: "Цвет корпуса",
	StepDial:  "Циферблат",
	StepHands: "Стрелки",
	StepRotor: "Ротор",
	StepStrap: "Ремешок",
	StepBezel: "Безель",
	StepOrder: "Заказ",
}

// stepCategories maps part-category steps to their catalog category.
var stepCategories = map[StepKind]models.PartCategory{
	StepDial:  models.CategoryDial,
	StepHands: models.CategoryHands,
	StepRotor: models.CategoryRotor,
	StepStrap: models.CategoryStrap,
	StepBezel: models.CategoryBezel,
}

// Step is one screen of the wizard. Derived, never stored.
type Step struct {
	Kind  StepKind
	Title string
}

// Category returns the part category a step selects, or false for the
// color and order steps.
func (s Step) Category() (models.PartCategory, bool) {
	category, ok := stepCategories[s.Kind]
	return category, ok
}

// ComputeSteps derives the ordered step sequence for a case. The color
// step requires at least one color variant; each part-category step
// requires both the case flag and a non-empty compatible set; the order
// step is always last and always present, so the sequence is never
// empty.
func ComputeSteps(watchCase *models.WatchCase, parts map[models.PartCategory][]models.WatchPart) []Step {
	kinds := []StepKind{StepColor, StepDial, StepHands, StepRotor, StepStrap, StepBezel, StepOrder}

	steps := make([]Step, 0, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case StepColor:
			if len(watchCase.Colors) == 0 {
				continue
			}
		case StepOrder:
			// Unconditional.
		default:
			category := stepCategories[kind]
			if !watchCase.AvailableParts.Has(category) || len(parts[category]) == 0 {
				continue
			}
		}
		steps = append(steps, Step{Kind: kind, Title: stepTitles[kind]})
	}
	return steps
}

// Sequencer tracks the current position within a step sequence with
// bounded forward and backward transitions. No skip-ahead.
type Sequencer struct {
	steps []Step
	index int
}

func NewSequencer(steps []Step) *Sequencer {
	return &Sequencer{steps: steps}
}

// Steps returns the ordered sequence.
func (s *Sequencer) Steps() []Step { return s.steps }

// Index returns the current step index.
func (s *Sequencer) Index() int { return s.index }

// Current returns the step at the current index.
func (s *Sequencer) Current() Step { return s.steps[s.index] }

// AtLast reports whether the sequencer is on the final (order) step.
func (s *Sequencer) AtLast() bool { return s.index == len(s.steps)-1 }

// Next advances one step. A no-op at the last index, not an error.
func (s *Sequencer) Next() {
	if s.index < len(s.steps)-1 {
		s.index++
	}
}

// Previous steps back. A no-op at index zero.
func (s *Sequencer) Previous() {
	if s.index > 0 {
		s.index--
	}
}
