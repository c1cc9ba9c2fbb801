package explain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/explainthis/internal/llm"
)

// State describes where the service is in the request lifecycle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSettled State = "settled"
)

// Service runs the explanation pipeline: prompt → provider → parse →
// title, producing a normalized Explanation record.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	state   State
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg, state: StateIdle}
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Explain runs one explanation request to completion. A single attempt:
// provider errors are returned as-is, never retried. Concurrent calls are
// not coordinated; each runs its own request.
func (s *Service) Explain(ctx context.Context, text string, level Level) (*Explanation, error) {
	s.setState(StateLoading)
	rec, err := s.generate(ctx, text, level)
	s.setState(StateSettled)
	return rec, err
}

// Request starts async generation. Only one result is held at a time —
// a newer settled request replaces an unconsumed one, so the last
// response to resolve wins.
func (s *Service) Request(ctx context.Context, text string, level Level) {
	s.setState(StateLoading)
	go func() {
		rec, err := s.generate(ctx, text, level)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = rec
		s.err = err
		s.ready = true
		s.state = StateSettled
	}()
}

// Result is a settled explanation request: either an Explanation or the
// error that sank it.
type Result struct {
	Explanation *Explanation
	Err         error
}

// Consume returns the settled result if one is ready. After consumption
// the slot is cleared and the service returns to idle.
func (s *Service) Consume() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Result{}, false
	}
	res := Result{Explanation: s.pending, Err: s.err}
	s.pending = nil
	s.err = nil
	s.ready = false
	s.state = StateIdle
	return res, true
}

func (s *Service) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Service) generate(ctx context.Context, text string, level Level) (*Explanation, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("explain: invalid level %q", level)
	}

	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: systemPrompt(level),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(text, level)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	return &Explanation{
		ID:           uuid.NewString(),
		Concept:      ExtractTitle(text),
		FullQuestion: text,
		Level:        level,
		Timestamp:    time.Now().UTC(),
		Body:         ParseSections(resp.Text),
		Category:     DefaultCategory,
		Saved:        false,
	}, nil
}
