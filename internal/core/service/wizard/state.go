package wizard

import (
	"doclib/internal/core/domain"
	"fmt"
)

type transition struct {
	from domain.WizardStep
	to   domain.WizardStep
}

// validTransitions defines every step change the wizard allows
var validTransitions = map[transition]bool{
	{domain.WizardStepSourceSelection, domain.WizardStepDetailsEntry}: true,
	{domain.WizardStepSourceSelection, domain.WizardStepAbandoned}:    true,

	{domain.WizardStepDetailsEntry, domain.WizardStepSourceSelection}: true,
	{domain.WizardStepDetailsEntry, domain.WizardStepSaving}:          true,
	{domain.WizardStepDetailsEntry, domain.WizardStepAbandoned}:       true,

	// commit failure goes back to the form
	{domain.WizardStepSaving, domain.WizardStepDetailsEntry}: true,
	{domain.WizardStepSaving, domain.WizardStepDone}:         true,
}

func validateTransition(from, to domain.WizardStep) error {
	if !validTransitions[transition{from: from, to: to}] {
		return fmt.Errorf("%w: from %s to %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

func requireStep(current, expected domain.WizardStep) error {
	if current != expected {
		return fmt.Errorf("%w: not allowed in step %s", domain.ErrInvalidTransition, current)
	}
	return nil
}
