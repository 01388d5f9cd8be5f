package quiz

import "testing"

func TestSessionResetClearsEverything(t *testing.T) {
	session := NewSession()

	questionsA := []Question{{Prompt: "old", Options: []string{"x", "y"}, CorrectAnswer: "x"}}
	session.Reset(questionsA)
	session.RecordAnswer(0, "y")
	session.SetResult(Tally{Score: 1, Answers: map[int]string{0: "y"}})

	questionsB := []Question{
		{Prompt: "new one", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{Prompt: "new two", Options: []string{"a", "b"}, CorrectAnswer: "b"},
	}
	session.Reset(questionsB)

	if session.Score() != 0 {
		t.Fatalf("score not reset, got %d", session.Score())
	}
	if len(session.Answers()) != 0 {
		t.Fatalf("answers not cleared, got %v", session.Answers())
	}

	questions := session.Questions()
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions after reset, got %d", len(questions))
	}
	for _, question := range questions {
		if question.Prompt == "old" {
			t.Fatalf("stale question survived reset: %+v", question)
		}
	}
}

func TestSessionRecordAnswerLastWriteWins(t *testing.T) {
	session := NewSession()
	session.Reset([]Question{{Prompt: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"}})

	session.RecordAnswer(0, "a")
	session.RecordAnswer(0, "b")

	answers := session.Answers()
	if answers[0] != "b" {
		t.Fatalf("expected last write to win, got %q", answers[0])
	}
}

func TestSessionRecordAnswerIgnoresOutOfRange(t *testing.T) {
	session := NewSession()
	session.Reset([]Question{{Prompt: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"}})

	session.RecordAnswer(-1, "a")
	session.RecordAnswer(1, "a")

	if len(session.Answers()) != 0 {
		t.Fatalf("expected out-of-range answers to be ignored, got %v", session.Answers())
	}
}

func TestSessionSnapshotsDoNotAliasInternalState(t *testing.T) {
	session := NewSession()
	session.Reset([]Question{{Prompt: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"}})
	session.RecordAnswer(0, "a")

	answers := session.Answers()
	answers[0] = "mutated"

	if session.Answers()[0] != "a" {
		t.Fatalf("answers snapshot aliased internal state")
	}

	questions := session.Questions()
	questions[0].Prompt = "mutated"

	if session.Questions()[0].Prompt != "q" {
		t.Fatalf("questions snapshot aliased internal state")
	}
}

func TestSessionSetResultReplacesPriorTally(t *testing.T) {
	session := NewSession()
	session.Reset([]Question{
		{Prompt: "one", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{Prompt: "two", Options: []string{"a", "b"}, CorrectAnswer: "b"},
	})

	session.SetResult(Tally{Score: 2, Answers: map[int]string{0: "a", 1: "b"}})
	session.SetResult(Tally{Score: 1, Answers: map[int]string{0: "a"}})

	if session.Score() != 1 {
		t.Fatalf("expected score 1 after second result, got %d", session.Score())
	}
	answers := session.Answers()
	if len(answers) != 1 || answers[0] != "a" {
		t.Fatalf("expected answers {0:a}, got %v", answers)
	}
}
