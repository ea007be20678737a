package wizard

// Step шаг мастера бронирования; шаги строго упорядочены
type Step int

const (
	StepService Step = iota
	StepProfessional
	StepDateTime
	StepContact
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepProfessional:
		return "professional"
	case StepDateTime:
		return "datetime"
	case StepContact:
		return "contact"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// next следующий шаг; false для последнего
func (s Step) next() (Step, bool) {
	switch s {
	case StepService:
		return StepProfessional, true
	case StepProfessional:
		return StepDateTime, true
	case StepDateTime:
		return StepContact, true
	case StepContact:
		return StepConfirmation, true
	case StepConfirmation:
		return s, false
	}
	return s, false
}

// previous предыдущий шаг; false для начального
func (s Step) previous() (Step, bool) {
	switch s {
	case StepService:
		return s, false
	case StepProfessional:
		return StepService, true
	case StepDateTime:
		return StepProfessional, true
	case StepContact:
		return StepDateTime, true
	case StepConfirmation:
		return StepContact, true
	}
	return s, false
}
