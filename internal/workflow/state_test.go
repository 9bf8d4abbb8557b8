package workflow

import (
	"errors"
	"testing"

	"sarabun-assist/internal/models"
)

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to State }{
		{StateIdle, StateUploaded},
		{StateUploaded, StateOCRing},
		{StateOCRing, StateOCRed},
		{StateOCRed, StateTypeSelected},
		{StateTypeSelected, StateExtracting},
		{StateExtracting, StateExtracted},
		{StateExtracted, StateOpeningGenerated},
		{StateOpeningGenerated, StateOpeningConfirmed},
		{StateOpeningConfirmed, StateBodyDrafted},
		{StateBodyDrafted, StateFinalised},
		// regeneration and stepping back
		{StateOpeningGenerated, StateOpeningGenerated},
		{StateOpeningConfirmed, StateOpeningGenerated},
		{StateBodyDrafted, StateBodyDrafted},
		{StateExtracted, StateTypeSelected},
	}
	for _, tt := range allowed {
		if _, err := tt.from.transition(tt.to); err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tt.from, tt.to, err)
		}
	}

	forbidden := []struct{ from, to State }{
		{StateIdle, StateOCRing},
		{StateUploaded, StateExtracting},
		{StateOCRed, StateOpeningGenerated},
		{StateTypeSelected, StateBodyDrafted},
		{StateFinalised, StateBodyDrafted},
	}
	for _, tt := range forbidden {
		_, err := tt.from.transition(tt.to)
		if !errors.Is(err, models.ErrInvalidTransition) {
			t.Errorf("%s -> %s: error = %v, want ErrInvalidTransition", tt.from, tt.to, err)
		}
	}
}
