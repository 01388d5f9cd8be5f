package quiz

// Tally is the outcome of scoring one attempt. Answers holds the selections
// that counted, keyed by question index; unanswered questions are absent.
type Tally struct {
	Score   int
	Answers map[int]string
}

// ScoreAttempt compares each selection against the question's correct answer
// and returns a fresh tally. The tally is recomputed from scratch on every
// call, so repeated submissions cannot accumulate.
//
// A selection only counts if its index is in range and its text is one of the
// question's options; anything else is treated the same as unanswered, which
// scores as incorrect.
func ScoreAttempt(questions []Question, selections map[int]string) Tally {
	tally := Tally{Answers: make(map[int]string)}

	for index, question := range questions {
		selected, ok := selections[index]
		if !ok || !hasOption(question, selected) {
			continue
		}
		tally.Answers[index] = selected
		if selected == question.CorrectAnswer {
			tally.Score++
		}
	}
	return tally
}

func hasOption(question Question, text string) bool {
	for _, option := range question.Options {
		if option == text {
			return true
		}
	}
	return false
}
