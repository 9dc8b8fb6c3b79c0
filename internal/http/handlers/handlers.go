// Handler wiring.
//
// Handlers groups the HTTP endpoints for health tips, profile categories,
// and appointments. It depends on abstract service interfaces so transport
// concerns stay separate from business logic; the router performs the
// dependency injection.
package handlers

// Handlers bundles the services behind the public API endpoints.
type Handlers struct {
	tipsSvc    HealthTipsService
	profileSvc ProfileService
	appts      AppointmentRepository
	reminders  ReminderScheduler
}

// New constructs a Handlers instance bound to the given collaborators.
func New(tips HealthTipsService, profile ProfileService, appts AppointmentRepository, reminders ReminderScheduler) *Handlers {
	return &Handlers{
		tipsSvc:    tips,
		profileSvc: profile,
		appts:      appts,
		reminders:  reminders,
	}
}
