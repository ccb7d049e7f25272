package domain

// SessionKind distinguishes focus blocks from breaks in a session plan.
type SessionKind string

const (
	SessionFocus      SessionKind = "focus"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

// Session is a single block in a focus-session plan: either a focus block
// bound to a task or a break.
type Session struct {
	Kind     SessionKind `json:"kind"`
	Duration int         `json:"duration"`

	// Focus-block fields.
	TaskID       string `json:"task_id,omitempty"`
	TaskTitle    string `json:"task_title,omitempty"`
	SessionIndex int    `json:"session_index,omitempty"`
	SessionCount int    `json:"session_count,omitempty"`
}

// IsBreak reports whether the session is a break block.
func (s Session) IsBreak() bool {
	return s.Kind == SessionShortBreak || s.Kind == SessionLongBreak
}
