package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.text, genai.RoleModel)},
		},
	}, nil
}

func TestGenerate(t *testing.T) {
	quota := errors.New("Error 429, Status: RESOURCE_EXHAUSTED")

	tests := []struct {
		name      string
		gens      []*fakeGenerator
		want      string
		wantErr   bool
		wantCalls []int
	}{
		{
			name:      "first key answers",
			gens:      []*fakeGenerator{{text: "notes"}, {text: "other"}},
			want:      "notes",
			wantCalls: []int{1, 0},
		},
		{
			name:      "rotates on quota error",
			gens:      []*fakeGenerator{{err: quota}, {text: "second"}},
			want:      "second",
			wantCalls: []int{1, 1},
		},
		{
			name:      "all keys exhausted",
			gens:      []*fakeGenerator{{err: quota}, {err: quota}},
			wantErr:   true,
			wantCalls: []int{1, 1},
		},
		{
			name:      "other errors do not rotate",
			gens:      []*fakeGenerator{{err: errors.New("invalid argument")}, {text: "unused"}},
			wantErr:   true,
			wantCalls: []int{1, 0},
		},
		{
			name:      "empty response",
			gens:      []*fakeGenerator{{text: ""}},
			wantErr:   true,
			wantCalls: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gens := make([]Generator, len(tt.gens))
			for i, g := range tt.gens {
				gens[i] = g
			}
			pool := NewWithGenerators(gens, logger.Nop())

			got, err := pool.Generate(context.Background(), "gemini-2.5-flash", genai.Text("hi"), nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Generate() = %v, want %v", got, tt.want)
			}
			for i, g := range tt.gens {
				if g.calls != tt.wantCalls[i] {
					t.Errorf("generator %d calls = %v, want %v", i, g.calls, tt.wantCalls[i])
				}
			}
		})
	}
}

func TestGenerateKeepsRotatedKey(t *testing.T) {
	first := &fakeGenerator{err: errors.New("quota exceeded")}
	second := &fakeGenerator{text: "ok"}
	pool := NewWithGenerators([]Generator{first, second}, logger.Nop())

	for range 2 {
		if _, err := pool.Generate(context.Background(), "m", genai.Text("hi"), nil); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
	}

	if first.calls != 1 {
		t.Errorf("rate limited key calls = %v, want %v", first.calls, 1)
	}
	if second.calls != 2 {
		t.Errorf("active key calls = %v, want %v", second.calls, 2)
	}
}

func TestNewWithoutKeys(t *testing.T) {
	_, err := New(context.Background(), nil, "", logger.Nop())
	if !errors.Is(err, ErrNoAPIKeys) {
		t.Errorf("New() error = %v, want %v", err, ErrNoAPIKeys)
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("Error 429"), true},
		{errors.New("quota exceeded for project"), true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("PERMISSION_DENIED"), false},
	}

	for _, tt := range tests {
		if got := isQuotaError(tt.err); got != tt.want {
			t.Errorf("isQuotaError(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
