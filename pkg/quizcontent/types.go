package quizcontent

// Default asset metadata applied to newly created categories.
const (
	// DefaultRiveFile is the placeholder animation shipped with the client.
	DefaultRiveFile = "placeholder.riv"

	// DefaultStateMachine is the stock state machine name the Rive editor
	// assigns, and the one the game client drives when none is configured.
	DefaultStateMachine = "State Machine 1"
)

// Category is a named grouping of question prompts together with the
// animated asset the client plays for it and its access flags.
//
// Title is the lookup key for updates and deletes. The store does not
// enforce title uniqueness on create; with duplicate titles an update
// targets the first match and a delete removes all matches.
type Category struct {
	Title        string   `json:"title"`
	RiveFile     *string  `json:"riveFile"`
	StateMachine *string  `json:"stateMachine"`
	Locked       bool     `json:"locked"`
	Adult        bool     `json:"adult"`
	Questions    []string `json:"questions"`
}

// CategoryBrief is the public projection of a category: everything except
// the question list.
type CategoryBrief struct {
	Title        string  `json:"title"`
	RiveFile     *string `json:"riveFile"`
	StateMachine *string `json:"stateMachine"`
	Locked       bool    `json:"locked"`
	Adult        bool    `json:"adult"`
}

// Question is a single prompt with its category's metadata denormalized
// onto it. RiveFile is resolved to an absolute URL; Question values are
// response shapes and are never persisted.
type Question struct {
	Text         string  `json:"text"`
	Category     string  `json:"category"`
	RiveFile     *string `json:"riveFile"`
	StateMachine *string `json:"stateMachine"`
}
