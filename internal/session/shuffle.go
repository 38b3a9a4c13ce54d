package session

import "math/rand"

// shuffleQuestions permutes qs in place with a uniform Fisher–Yates
// shuffle.
func shuffleQuestions(qs []*SessionQuestion) {
	rand.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}

// displayOrder returns a fresh random permutation of option indices for
// a question with n options. It is generated once per question per
// session, at build time, so repeated renders of the same question show
// the options in a stable order.
func displayOrder(n int) []int {
	return rand.Perm(n)
}
