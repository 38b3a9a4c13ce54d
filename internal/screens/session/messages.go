package session

// explanationMsg delivers the result of an explanation fetch. Fetches
// are fire-and-forget: whatever question is on screen when the result
// lands receives it (last writer wins).
type explanationMsg struct {
	Text string
	Err  error
}
