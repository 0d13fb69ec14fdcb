package constants

// NATS Subjects
const (
	// Dispatcher mirrors
	SubjectFleetBoard = "fleet.board"
	SubjectSOSActive  = "sos.active"
)
