package play

// startMsg is emitted by the landing menu's start item.
type startMsg struct{}

// goHomeMsg is emitted by the results page's home button.
type goHomeMsg struct{}

// attemptRecordedMsg reports the outcome of writing an attempt to the log.
type attemptRecordedMsg struct {
	AttemptID string
	Err       error
}
