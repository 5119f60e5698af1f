package appointment

import "time"

// Origem de um agendamento: página pública ou lançamento manual do
// profissional. Os dois caminhos passam pelo mesmo orquestrador.
type Source string

const (
	SourcePublic Source = "public"
	SourceManual Source = "manual"
)

type AvailabilityInput struct {
	ProfessionalID uint
	Date           time.Time
	ExcludeBooked  bool
}
