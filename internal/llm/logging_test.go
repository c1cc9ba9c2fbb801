package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/explainthis/internal/store"
)

// recordingEventRepo captures appended events in memory.
type recordingEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingEventRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (r *recordingEventRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "generated text",
		Usage: Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "explain")
	req := Request{
		System:   "system prompt",
		Messages: []Message{{Role: RoleUser, Content: "what is DNS"}},
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "generated text" {
		t.Errorf("response text = %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success {
		t.Error("expected success flag")
	}
	if e.Purpose != "explain" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != "generated text" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	if !strings.Contains(e.RequestBody, "system prompt") || !strings.Contains(e.RequestBody, "what is DNS") {
		t.Errorf("request body missing content: %q", e.RequestBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error to surface through decorator")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure flag")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown without context label", e.Purpose)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("bare context purpose = %q", got)
	}
	ctx := WithPurpose(context.Background(), "explain")
	if got := PurposeFrom(ctx); got != "explain" {
		t.Errorf("purpose = %q", got)
	}
}

func TestSerializeRequest(t *testing.T) {
	s := serializeRequest(Request{
		System: "sys",
		Messages: []Message{
			{Role: RoleUser, Content: "u1"},
			{Role: RoleAssistant, Content: "a1"},
		},
	})

	for _, want := range []string{"[system]", "sys", "[user]", "u1", "[assistant]", "a1"} {
		if !strings.Contains(s, want) {
			t.Errorf("serialized request missing %q:\n%s", want, s)
		}
	}
}
