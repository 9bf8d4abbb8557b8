package models

import "errors"

// Failure kinds surfaced by the drafting pipeline. Wrap with fmt.Errorf
// and %w; callers discriminate with errors.Is.
var (
	// ErrOCRUnavailable means no page could be recognised at all.
	ErrOCRUnavailable = errors.New("ocr service unavailable")
	// ErrOCRPartial means a subset of pages failed; placeholders were
	// substituted for the failed pages.
	ErrOCRPartial = errors.New("ocr produced partial results")
	// ErrLLMUnavailable covers transport and API failures of the chat service.
	ErrLLMUnavailable = errors.New("llm service unavailable")
	// ErrLLMTimeout means the chat call exceeded its deadline.
	ErrLLMTimeout = errors.New("llm request timed out")
	// ErrExtractionFailed means the model output could not be parsed into a record.
	ErrExtractionFailed = errors.New("field extraction failed")
	// ErrOpeningParseFailed means every opening-candidate parsing strategy came up empty.
	ErrOpeningParseFailed = errors.New("opening candidates could not be parsed")
	// ErrBodyGenerationFailed means the drafted body violated the output contract.
	ErrBodyGenerationFailed = errors.New("body generation failed")
	// ErrVectorStoreUnavailable covers connection and query failures of the vector store.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")
	// ErrFeedbackWriteFailed means a feedback row could not be appended.
	// It is logged and tolerated, never fatal to the workflow.
	ErrFeedbackWriteFailed = errors.New("feedback write failed")
	// ErrInvalidTransition means a workflow operation was requested in a
	// state that does not permit it.
	ErrInvalidTransition = errors.New("invalid workflow transition")
)
