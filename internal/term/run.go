package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"quiz-widget/internal/app"
)

const maxAnswerAttempts = 3

// Run drives one or more quiz attempts over a line-based terminal: load and
// render the questions, collect one selection per question, submit, show the
// result, and offer a restart. Questions left unanswered after repeated
// invalid input count as incorrect.
func Run(ctx context.Context, ctrl *app.Controller, in io.Reader, out io.Writer) error {
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	for {
		questions := ctrl.Session().Questions()
		selections := make(map[int]string, len(questions))

		for idx, question := range questions {
			fmt.Fprintf(out, "Answer for question %d (A-%c): ", idx+1, optionLetter(len(question.Options)-1))
			chosen, ok := readAnswer(reader, out, len(question.Options))
			if !ok {
				fmt.Fprintln(out, "Leaving question unanswered.")
				continue
			}
			selections[idx] = question.Options[chosen]
			ctrl.Session().RecordAnswer(idx, question.Options[chosen])
		}

		if _, ok := ctrl.Submit(selections); !ok {
			return app.ErrNoQuestions
		}

		if !promptPlayAgain(reader, out) {
			return nil
		}
		if err := ctrl.PlayAgain(ctx); err != nil {
			return err
		}
	}
}

// readAnswer accepts a single letter within range, retrying a few times
// before giving up on the question.
func readAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAnswerAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return -1, false
		}

		answer := strings.ToUpper(strings.TrimSpace(line))
		if len(answer) == 1 {
			letter := answer[0]
			if letter >= 'A' && letter <= maxLetter {
				return int(letter - 'A'), true
			}
		}

		if attempt < maxAnswerAttempts {
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c: ", maxLetter)
		}
		if err != nil {
			return -1, false
		}
	}

	return -1, false
}

func promptPlayAgain(reader *bufio.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\nPlay again? [y/N]: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
