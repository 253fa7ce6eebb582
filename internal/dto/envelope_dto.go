package dto

// Success envelopes. Every successful response carries success=true next to
// its payload.

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TestEnvelope struct {
	Success bool             `json:"success"`
	Test    *TestResponseDTO `json:"test"`
}

type TestListEnvelope struct {
	Success bool              `json:"success"`
	Tests   []TestResponseDTO `json:"tests"`
}

type SafeTestEnvelope struct {
	Success bool         `json:"success"`
	Test    *SafeTestDTO `json:"test"`
}

type SafeTestListEnvelope struct {
	Success bool          `json:"success"`
	Tests   []SafeTestDTO `json:"tests"`
}

type StartAttemptEnvelope struct {
	Success bool `json:"success"`
	StartAttemptResponseDTO
}

type SubmitAttemptEnvelope struct {
	Success bool `json:"success"`
	SubmitAttemptResponseDTO
}

type AttemptEnvelope struct {
	Success bool                  `json:"success"`
	Attempt *TestAttemptDetailDTO `json:"attempt"`
}

type LeaderboardEnvelope struct {
	Success  bool                    `json:"success"`
	Attempts []TestAttemptSummaryDTO `json:"attempts"`
}
