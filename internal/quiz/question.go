package quiz

import (
	"html"
	"math/rand"
	"time"

	"quiz-widget/internal/opentdb"
)

// Question is one multiple-choice question. Immutable once built: the option
// order is fixed at creation and CorrectAnswer always appears in Options.
type Question struct {
	Prompt        string
	Options       []string
	CorrectAnswer string
}

// BuildQuestions maps a provider batch into questions: HTML entities are
// decoded, the correct answer is mixed into the incorrect ones, and each
// option list is shuffled so the correct answer's position is unpredictable.
// Items without at least one incorrect answer are dropped whole.
//
// rng may be nil, in which case a time-seeded source is used. Tests pass a
// seeded rng for deterministic option order.
func BuildQuestions(raw []opentdb.RawQuestion, rng *rand.Rand) []Question {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		question, ok := buildQuestion(item, rng)
		if !ok {
			continue
		}
		questions = append(questions, question)
	}
	return questions
}

func buildQuestion(raw opentdb.RawQuestion, rng *rand.Rand) (Question, bool) {
	if raw.CorrectAnswer == "" || len(raw.IncorrectAnswers) == 0 {
		return Question{}, false
	}

	correct := html.UnescapeString(raw.CorrectAnswer)

	options := make([]string, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		options = append(options, html.UnescapeString(incorrect))
	}
	options = append(options, correct)
	shuffle(options, rng)

	return Question{
		Prompt:        html.UnescapeString(raw.Question),
		Options:       options,
		CorrectAnswer: correct,
	}, true
}

// shuffle is an in-place Fisher-Yates pass over the options.
func shuffle(options []string, rng *rand.Rand) {
	for i := len(options) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
}
