package building

import (
	"fmt"

	"github.com/google/uuid"
)

// Passenger travels from Origin to Destination. Only Destination drives
// dispatch; ID and Origin are for tracing.
type Passenger struct {
	ID          uuid.UUID
	Origin      int
	Destination int
}

func NewPassenger(origin, destination int) Passenger {
	return Passenger{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
	}
}

func (p Passenger) String() string {
	return fmt.Sprintf("%s(%d->%d)", p.ID.String()[:8], p.Origin, p.Destination)
}
