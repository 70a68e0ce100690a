package quizcontent

// CreateCategoryRequest is the draft for a new category. Absent optional
// fields take their documented defaults: DefaultRiveFile,
// DefaultStateMachine, unlocked, non-adult, empty question list.
type CreateCategoryRequest struct {
	Title        string   `json:"title"`
	RiveFile     *string  `json:"riveFile"`
	StateMachine *string  `json:"stateMachine"`
	Locked       *bool    `json:"locked"`
	Adult        *bool    `json:"adult"`
	Questions    []string `json:"questions"`
}

// UpdateCategoryRequest is a partial category. Every non-nil field replaces
// the corresponding field on the matched record wholesale; nil fields are
// left untouched. A non-nil Questions replaces the entire sequence (an
// explicit empty list clears it), it never appends.
type UpdateCategoryRequest struct {
	Title        *string  `json:"title"`
	RiveFile     *string  `json:"riveFile"`
	StateMachine *string  `json:"stateMachine"`
	Locked       *bool    `json:"locked"`
	Adult        *bool    `json:"adult"`
	Questions    []string `json:"questions"`
}
