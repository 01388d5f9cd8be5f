package term

import (
	"fmt"
	"io"

	"quiz-widget/internal/quiz"
)

// Renderer writes the quiz views to a terminal. It implements the
// presentation boundary consumed by app.Controller: it formats semantic
// content and never computes correctness.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) RenderQuestions(questions []quiz.Question) {
	for idx, question := range questions {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%d. %s\n", idx+1, question.Prompt)
		for optionIdx, option := range question.Options {
			fmt.Fprintf(r.out, "   %c. %s\n", optionLetter(optionIdx), option)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) ShowResults(score, total int) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "You scored %d out of %d questions correctly!\n", score, total)
}

func (r *Renderer) ShowError(message string) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Error: %s\n", message)
}

func (r *Renderer) Reset() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "--------------------------------")
}

func optionLetter(index int) rune {
	return rune('A' + index)
}
