package repository

import "github.com/Domenick1991/airportsystem/internal/domain"

// Seed data used when nothing has been persisted yet. Matches the demo
// deployment: a flight board out of Peshawar (PEW) with one departed flight
// so the closed-booking path is reachable immediately.

func DefaultUsers() []domain.User {
	return []domain.User{
		{ID: "user1", Name: "Admin User", Email: "admin@pasi.com", Password: "password", Role: domain.RoleAdmin, BookedTickets: []string{}},
		{ID: "user2", Name: "Ali Khan", Email: "ali@pasi.com", Password: "password", Role: domain.RoleUser, BookedTickets: []string{}},
	}
}

func DefaultFlights() []domain.Flight {
	return []domain.Flight{
		{ID: "f001", FlightNumber: "PK-755", Origin: "PEW", Destination: "DXB", Time: "10:30", Gate: "05", Status: domain.FlightStatusScheduled, Price: 450, BookedBy: []string{}},
		{ID: "f002", FlightNumber: "QR-601", Origin: "PEW", Destination: "DOH", Time: "12:45", Gate: "11", Status: domain.FlightStatusDelayed, Price: 520, BookedBy: []string{}},
		{ID: "f003", FlightNumber: "PA-405", Origin: "PEW", Destination: "KHI", Time: "14:00", Gate: "03", Status: domain.FlightStatusBoarding, Price: 180, BookedBy: []string{}},
		{ID: "f004", FlightNumber: "GF-011", Origin: "PEW", Destination: "BAH", Time: "16:20", Gate: "08", Status: domain.FlightStatusScheduled, Price: 490, BookedBy: []string{}},
		{ID: "f005", FlightNumber: "SV-345", Origin: "PEW", Destination: "RUH", Time: "18:50", Gate: "12", Status: domain.FlightStatusDeparted, Price: 600, BookedBy: []string{}},
		{ID: "f006", FlightNumber: "PK-740", Origin: "PEW", Destination: "ISB", Time: "20:15", Gate: "04", Status: domain.FlightStatusScheduled, Price: 150, BookedBy: []string{}},
		{ID: "f007", FlightNumber: "TK-144", Origin: "PEW", Destination: "IST", Time: "21:30", Gate: "07", Status: domain.FlightStatusScheduled, Price: 750, BookedBy: []string{}},
		{ID: "f008", FlightNumber: "FZ-350", Origin: "PEW", Destination: "DXB", Time: "02:45", Gate: "06", Status: domain.FlightStatusScheduled, Price: 460, BookedBy: []string{}},
	}
}
