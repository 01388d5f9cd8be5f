package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"quiz-widget/internal/quiz"
)

// Attempt lifecycle states. StateError is terminal for the attempt: only an
// external restart (a fresh Load from the embedding layer) leaves it.
const (
	StateIdle      = "idle"
	StateLoading   = "loading"
	StateReady     = "ready"
	StateSubmitted = "submitted"
	StateError     = "error"
)

// ErrNoQuestions is returned when a load succeeds at the transport level but
// yields an empty batch; the widget cannot proceed without questions.
var ErrNoQuestions = errors.New("no questions loaded")

// Renderer is the presentation boundary. The controller only pushes semantic
// content through it; layout and input handling belong to the implementation.
type Renderer interface {
	RenderQuestions(questions []quiz.Question)
	ShowResults(score, total int)
	ShowError(message string)
	Reset()
}

// QuestionsFetcher loads one question batch. A failed load returns an error
// and no questions, never a partial batch.
type QuestionsFetcher func(ctx context.Context) ([]quiz.Question, error)

// Controller orchestrates one quiz attempt: load, render, await submission,
// score, display results, restart. All entry points are discrete events from
// the presentation layer.
type Controller struct {
	fetcher  QuestionsFetcher
	renderer Renderer
	logger   *zap.Logger

	mu      sync.Mutex
	session *quiz.Session
	state   string
	loadSeq uint64
}

func NewController(fetcher QuestionsFetcher, renderer Renderer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger,
		session:  quiz.NewSession(),
		state:    StateIdle,
	}
}

// Load fetches a fresh question batch, resets the session and the renderer,
// and renders the new questions. If another Load starts while this one is in
// flight, the superseded result is discarded: only the newest load commits.
func (c *Controller) Load(ctx context.Context) error {
	seq := c.beginLoad()
	start := time.Now()

	questions, err := c.fetcher(ctx)
	if err == nil && len(questions) == 0 {
		err = ErrNoQuestions
	}

	return c.commitLoad(seq, questions, err, time.Since(start))
}

// Submit scores the given selections against the current questions, records
// the tally in the session, and shows the results. It is a no-op before the
// first successful load and idempotent on repeated calls: each call
// recomputes the tally from scratch.
func (c *Controller) Submit(selections map[int]string) (quiz.Tally, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady && c.state != StateSubmitted {
		c.logger.Debug("submission ignored", zap.String("state", c.state))
		return quiz.Tally{}, false
	}

	questions := c.session.Questions()
	if len(questions) == 0 {
		return quiz.Tally{}, false
	}

	tally := quiz.ScoreAttempt(questions, selections)
	c.session.SetResult(tally)
	c.state = StateSubmitted
	c.renderer.ShowResults(tally.Score, len(questions))

	c.logger.Info("attempt submitted",
		zap.Int("score", tally.Score),
		zap.Int("total", len(questions)),
		zap.Int("answered", len(tally.Answers)))

	return tally, true
}

// PlayAgain starts a new attempt. Only valid after a submission; in any
// other state it does nothing.
func (c *Controller) PlayAgain(ctx context.Context) error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	if state != StateSubmitted {
		c.logger.Debug("play again ignored", zap.String("state", state))
		return nil
	}

	c.logger.Info("restarting quiz")
	return c.Load(ctx)
}

// State reports the current lifecycle state.
func (c *Controller) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session exposes the attempt state for the presentation layer.
func (c *Controller) Session() *quiz.Session {
	return c.session
}

func (c *Controller) beginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadSeq++
	c.state = StateLoading
	c.logger.Info("loading questions", zap.Uint64("load", c.loadSeq))
	return c.loadSeq
}

func (c *Controller) commitLoad(seq uint64, questions []quiz.Question, err error, elapsed time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loadSeq {
		// A newer load superseded this one; last load wins.
		c.logger.Info("discarding stale load result",
			zap.Uint64("load", seq),
			zap.Uint64("latest", c.loadSeq))
		return nil
	}

	if err != nil {
		c.state = StateError
		c.renderer.ShowError("Failed to load questions. Please try again later.")
		c.logger.Warn("question load failed", zap.Error(err))
		return fmt.Errorf("load questions: %w", err)
	}

	c.session.Reset(questions)
	c.renderer.Reset()
	c.renderer.RenderQuestions(questions)
	c.state = StateReady

	c.logger.Info("questions loaded",
		zap.Int("count", len(questions)),
		zap.Duration("elapsed", elapsed))
	return nil
}
