package workflow

import (
	"fmt"

	"sarabun-assist/internal/models"
)

// State names a stage of the reply-drafting workflow. Transitions only
// move through the table below; anything else is rejected.
type State string

const (
	StateIdle             State = "idle"
	StateUploaded         State = "uploaded"
	StateOCRing           State = "ocring"
	StateOCRed            State = "ocred"
	StateTypeSelected     State = "type_selected"
	StateExtracting       State = "extracting"
	StateExtracted        State = "extracted"
	StateOpeningGenerated State = "opening_generated"
	StateOpeningConfirmed State = "opening_confirmed"
	StateBodyDrafted      State = "body_drafted"
	StateFinalised        State = "finalised"
)

var transitions = map[State][]State{
	StateIdle:             {StateUploaded},
	StateUploaded:         {StateOCRing},
	StateOCRing:           {StateOCRed},
	StateOCRed:            {StateTypeSelected},
	StateTypeSelected:     {StateExtracting, StateTypeSelected},
	StateExtracting:       {StateExtracted},
	StateExtracted:        {StateOpeningGenerated, StateTypeSelected},
	StateOpeningGenerated: {StateOpeningConfirmed, StateOpeningGenerated, StateTypeSelected},
	StateOpeningConfirmed: {StateBodyDrafted, StateOpeningGenerated},
	StateBodyDrafted:      {StateFinalised, StateBodyDrafted, StateOpeningConfirmed},
	StateFinalised:        {},
}

// canTransition reports whether moving from s to next follows the table.
// A new upload resets any state back to the start, so that move is always
// allowed and handled by the controller directly.
func (s State) canTransition(next State) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s State) transition(next State) (State, error) {
	if !s.canTransition(next) {
		return s, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, s, next)
	}
	return next, nil
}
