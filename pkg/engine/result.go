package engine

// FailureCode classifies why a command did not go through. Failed
// commands never mutate state; the code plus message is the whole
// outcome.
type FailureCode string

const (
	FailNone             FailureCode = ""
	FailUnknownVerb      FailureCode = "unknown_verb"
	FailReferentNotFound FailureCode = "referent_not_found"
	FailPrecondition     FailureCode = "precondition_failed"
	FailCapacity         FailureCode = "capacity_exceeded"
)

// ActionResult is the complete outcome of executing one command. It is
// a plain value: the engine returns it and keeps no reference.
type ActionResult struct {
	Success bool        `json:"success"`
	Code    FailureCode `json:"code,omitempty"`
	Message string      `json:"message"`

	RoomChanged      bool   `json:"room_changed,omitempty"`
	Room             string `json:"room,omitempty"`
	InventoryChanged bool   `json:"inventory_changed,omitempty"`

	// Side-effect notifications: sanity slipping, the lamp dying, the
	// blood moon rising. Ordered as they happened.
	Notifications []string `json:"notifications,omitempty"`

	SanityDelta int  `json:"sanity_delta,omitempty"`
	ScoreDelta  int  `json:"score_delta,omitempty"`
	Won         bool `json:"won,omitempty"` // Victory reached on this turn
}

// fail builds a failed result. State is untouched by construction: the
// engine only commits staged state on success.
func fail(code FailureCode, message string) *ActionResult {
	return &ActionResult{Success: false, Code: code, Message: message}
}

// succeed builds a successful result shell; the executor fills in
// deltas and notifications as the turn settles.
func succeed(message string) *ActionResult {
	return &ActionResult{Success: true, Message: message}
}

func (r *ActionResult) notify(notes ...string) {
	for _, n := range notes {
		if n != "" {
			r.Notifications = append(r.Notifications, n)
		}
	}
}
