package wizard

import (
	"doclib/internal/core/domain"
	"slices"
	"strings"
)

// UpdateDetails replaces the form fields. Tags are only replaced when details carries some.
func (w *Wizard) UpdateDetails(details domain.DocumentDetails) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := requireStep(w.step, domain.WizardStepDetailsEntry); err != nil {
		return err
	}

	tags := w.details.Tags
	w.details = details
	w.details.Tags = tags
	if details.Tags != nil {
		w.details.Tags = nil
		for _, tag := range details.Tags {
			w.addTag(tag)
		}
	}
	return nil
}

func (w *Wizard) AddTag(tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := requireStep(w.step, domain.WizardStepDetailsEntry); err != nil {
		return err
	}
	w.addTag(tag)
	return nil
}

func (w *Wizard) RemoveTag(tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := requireStep(w.step, domain.WizardStepDetailsEntry); err != nil {
		return err
	}
	normalized := normalizeTag(tag)
	w.details.Tags = slices.DeleteFunc(w.details.Tags, func(t string) bool { return t == normalized })
	return nil
}

func (w *Wizard) addTag(tag string) {
	normalized := normalizeTag(tag)
	if normalized == "" || slices.Contains(w.details.Tags, normalized) {
		return
	}
	w.details.Tags = append(w.details.Tags, normalized)
}

func normalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}

func (w *Wizard) missingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"title", w.details.Title},
		{"type", w.details.Type},
		{"subject", w.details.Subject},
		{"school", w.details.School},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if w.source == nil {
		missing = append(missing, "source")
	}
	return missing
}
