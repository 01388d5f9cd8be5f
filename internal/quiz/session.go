package quiz

import "sync"

// Session holds the state of one quiz attempt: the loaded questions, the
// running score, and the answers the user actually gave (indexed by
// question position). A new attempt replaces everything via Reset; nothing
// leaks across attempts.
type Session struct {
	mu        sync.Mutex
	questions []Question
	score     int
	answers   map[int]string
}

func NewSession() *Session {
	return &Session{answers: make(map[int]string)}
}

// Reset replaces the question set and clears score and answers. Observers
// never see a half-reset session.
func (s *Session) Reset(questions []Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = make([]Question, len(questions))
	copy(s.questions, questions)
	s.score = 0
	s.answers = make(map[int]string)
}

// RecordAnswer stores the selected option text for a question. Last write
// wins. Out-of-range indexes are ignored.
func (s *Session) RecordAnswer(index int, option string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.questions) {
		return
	}
	s.answers[index] = option
}

// SetResult commits a computed tally, replacing any prior score and answers.
func (s *Session) SetResult(tally Tally) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.score = tally.Score
	s.answers = make(map[int]string, len(tally.Answers))
	for index, answer := range tally.Answers {
		s.answers[index] = answer
	}
}

// Questions returns a copy of the current question list.
func (s *Session) Questions() []Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := make([]Question, len(s.questions))
	copy(questions, s.questions)
	return questions
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Answers returns a snapshot copy of the recorded answers.
func (s *Session) Answers() map[int]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[int]string, len(s.answers))
	for index, answer := range s.answers {
		snapshot[index] = answer
	}
	return snapshot
}
