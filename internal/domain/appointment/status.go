package appointment

import "github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Transições permitidas:
//
//	pending   → confirmed | cancelled
//	confirmed → completed | cancelled
//
// cancelled e completed são terminais.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition valida uma mudança de status.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// InitialStatus é o status de um agendamento criado sem status explícito.
func InitialStatus() Status {
	return StatusPending
}
