package analysis

import (
	"context"
	stdErrors "errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/cache"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

type fakeAnalyzer struct {
	mu     sync.Mutex
	calls  int
	result ai.Result
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, transcript string) (ai.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return ai.Result{}, f.err
	}
	return f.result, nil
}

func (f *fakeAnalyzer) Provider() string       { return ai.ProviderGemini }
func (f *fakeAnalyzer) Model() string          { return ai.GeminiDefaultModel }
func (f *fakeAnalyzer) Pricing() ai.PriceTable { return ai.GeminiFlashPricing }

type transcriptRepo struct {
	records map[uuid.UUID]*entities.Transcript
}

func (r *transcriptRepo) Create(_ context.Context, t *entities.Transcript) error {
	r.records[t.ID] = t
	return nil
}

func (r *transcriptRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Transcript, error) {
	return r.records[id], nil
}

func (r *transcriptRepo) FindBySource(_ context.Context, source string) (*entities.Transcript, error) {
	for _, t := range r.records {
		if t.Source == source {
			return t, nil
		}
	}
	return nil, nil
}

func (r *transcriptRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

type analysisRepo struct {
	records []entities.Analysis
	err     error
}

func (r *analysisRepo) Create(_ context.Context, a *entities.Analysis) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, *a)
	return nil
}

func (r *analysisRepo) FindLatestByTranscriptID(_ context.Context, id uuid.UUID) (*entities.Analysis, error) {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].TranscriptID != nil && *r.records[i].TranscriptID == id {
			a := r.records[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *analysisRepo) ListByTranscriptID(_ context.Context, id uuid.UUID) ([]entities.Analysis, error) {
	var out []entities.Analysis
	for i := len(r.records) - 1; i >= 0; i-- {
		if a := r.records[i]; a.TranscriptID != nil && *a.TranscriptID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

type uploads map[string]string

func (u uploads) UploadText(_ context.Context, name, content string) error {
	u[name] = content
	return nil
}

type fixture struct {
	svc         Service
	analyzer    *fakeAnalyzer
	analyses    *analysisRepo
	store       uploads
	transcript  *entities.Transcript
	memoryCache *cache.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	analyzer := &fakeAnalyzer{result: ai.Result{
		Content:  "Summary of the call",
		Provider: ai.ProviderGemini,
		Model:    ai.GeminiDefaultModel,
		Usage:    ai.Usage{PromptTokens: 100000, OutputTokens: 20000},
	}}
	tr := entities.NewTranscript("call.json", "Alice: hi \n\nBob: hello", []entities.Paragraph{{Speaker: "Alice", Text: "hi"}, {Speaker: "Bob", Text: "hello"}}, nil, 2)
	transcripts := &transcriptRepo{records: map[uuid.UUID]*entities.Transcript{tr.ID: tr}}
	analyses := &analysisRepo{}
	store := uploads{}
	memoryCache := cache.NewMemoryStore()
	t.Cleanup(memoryCache.Close)

	svc := NewService(Deps{
		Transcripts: transcripts,
		Analyses:    analyses,
		Analyzer:    analyzer,
		Cache:       memoryCache,
		CacheTTL:    time.Hour,
		Store:       store,
		Logger:      zap.NewNop(),
	})
	return &fixture{svc: svc, analyzer: analyzer, analyses: analyses, store: store, transcript: tr, memoryCache: memoryCache}
}

func TestAnalyze_PersistsWithCost(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Analyze(context.Background(), f.transcript.ID, Options{Upload: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Content != "Summary of the call" || got.Cached {
		t.Fatalf("unexpected analysis %+v", got)
	}
	want := ai.EstimateCost(100000, 20000)
	if math.Abs(got.CostUSD-want) > 1e-12 {
		t.Fatalf("unexpected cost %f want %f", got.CostUSD, want)
	}
	if got.TranscriptID == nil || *got.TranscriptID != f.transcript.ID {
		t.Fatal("analysis not linked to transcript")
	}
	if got.ObjectKey != ObjectName(got.ID) || f.store[got.ObjectKey] != got.Content {
		t.Fatalf("analysis not uploaded: %s", got.ObjectKey)
	}
	if len(f.analyses.records) != 1 {
		t.Fatalf("expected 1 stored analysis, got %d", len(f.analyses.records))
	}

	latest, err := f.svc.Latest(context.Background(), f.transcript.ID)
	if err != nil || latest.ID != got.ID {
		t.Fatalf("unexpected latest %v, %v", latest, err)
	}
}

func TestAnalyze_UsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Analyze(ctx, f.transcript.ID, Options{}); err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	second, err := f.svc.Analyze(ctx, f.transcript.ID, Options{})
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	if f.analyzer.calls != 1 {
		t.Fatalf("expected 1 analyzer call, got %d", f.analyzer.calls)
	}
	if !second.Cached || second.PromptTokens != 100000 {
		t.Fatalf("expected cached analysis, got %+v", second)
	}

	if _, err := f.svc.Analyze(ctx, f.transcript.ID, Options{Refresh: true}); err != nil {
		t.Fatalf("refresh analyze: %v", err)
	}
	if f.analyzer.calls != 2 {
		t.Fatalf("refresh should bypass cache, calls=%d", f.analyzer.calls)
	}
}

func TestAnalyzeText(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.AnalyzeText(context.Background(), "SPEAKER_00: hi")
	if err != nil {
		t.Fatalf("analyze text: %v", err)
	}
	if got.TranscriptID != nil {
		t.Fatal("text analysis must not reference a transcript")
	}
	if len(f.analyses.records) != 0 {
		t.Fatal("text analysis must not be persisted")
	}
	if got.CacheKey != CacheKey(ai.ProviderGemini, ai.GeminiDefaultModel, "SPEAKER_00: hi") {
		t.Fatalf("unexpected cache key %s", got.CacheKey)
	}

	_, err = f.svc.AnalyzeText(context.Background(), "  \n")
	if !stdErrors.Is(err, entities.ErrEmptyTranscript) {
		t.Fatalf("expected empty transcript error, got %v", err)
	}
}

func TestAnalyze_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Analyze(ctx, uuid.New(), Options{})
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_TRANSCRIPT_NOT_FOUND {
		t.Fatalf("expected TRANSCRIPT_NOT_FOUND, got %v", err)
	}

	f.analyzer.err = stdErrors.New("quota exceeded")
	_, err = f.svc.Analyze(ctx, f.transcript.ID, Options{})
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_AI_ANALYSIS_FAILED {
		t.Fatalf("expected AI_ANALYSIS_FAILED, got %v", err)
	}
	if len(f.analyses.records) != 0 {
		t.Fatal("failed analysis persisted")
	}

	_, err = f.svc.Latest(ctx, f.transcript.ID)
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_ANALYSIS_NOT_FOUND {
		t.Fatalf("expected ANALYSIS_NOT_FOUND, got %v", err)
	}

	unconfigured := NewService(Deps{})
	_, err = unconfigured.AnalyzeText(ctx, "text")
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_AI_SERVICE_UNAVAILABLE {
		t.Fatalf("expected AI_SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.svc.List(ctx, f.transcript.ID)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no analyses, got %v, %v", empty, err)
	}

	first, err := f.svc.Analyze(ctx, f.transcript.ID, Options{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, err := f.svc.Analyze(ctx, f.transcript.ID, Options{Refresh: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	list, err := f.svc.List(ctx, f.transcript.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	_, err = f.svc.List(ctx, uuid.New())
	if code, ok := errors.CodeOf(err); !ok || code != errors.ErrorCode_TRANSCRIPT_NOT_FOUND {
		t.Fatalf("expected TRANSCRIPT_NOT_FOUND, got %v", err)
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("gemini", "m", "text")
	if len(a) != 64 {
		t.Fatalf("unexpected key length %d", len(a))
	}
	if a == CacheKey("groq", "m", "text") || a == CacheKey("gemini", "m", "text2") {
		t.Fatal("keys must differ by provider and text")
	}
	if a != CacheKey("gemini", "m", "text") {
		t.Fatal("keys must be deterministic")
	}
}
