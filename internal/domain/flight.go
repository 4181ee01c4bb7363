package domain

import "slices"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "Scheduled"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusBoarding  FlightStatus = "Boarding"
	FlightStatusDeparted  FlightStatus = "Departed"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

// Closed reports whether the status is terminal, i.e. the flight no longer
// accepts bookings.
func (s FlightStatus) Closed() bool {
	return s == FlightStatusDeparted || s == FlightStatusCancelled
}

type Flight struct {
	ID           string       `json:"id"`
	FlightNumber string       `json:"flightNumber"`
	Origin       string       `json:"origin"`
	Destination  string       `json:"destination"`
	Time         string       `json:"time"`
	Gate         string       `json:"gate"`
	Status       FlightStatus `json:"status"`
	Price        float64      `json:"price"`
	BookedBy     []string     `json:"bookedBy"`
}

func (f *Flight) BookedByUser(userID string) bool {
	return slices.Contains(f.BookedBy, userID)
}

// Clone returns a deep copy so callers cannot mutate store-held state.
func (f *Flight) Clone() *Flight {
	if f == nil {
		return nil
	}
	c := *f
	c.BookedBy = slices.Clone(f.BookedBy)
	return &c
}
