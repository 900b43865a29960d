package deed

// StatusReceived is the label every new case starts with.
// Status is an open text label rather than a closed state machine: the
// registry staff drive status vocabulary, so transitions are not validated.
const StatusReceived = "📥 Recebida"

// InitialStatus returns the status for a newly created case.
func InitialStatus() string {
	return StatusReceived
}
