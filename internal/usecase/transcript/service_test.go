package transcript

import (
	"context"
	stdErrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

type memoryTranscriptRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entities.Transcript
	err     error
}

func newMemoryTranscriptRepo() *memoryTranscriptRepo {
	return &memoryTranscriptRepo{records: map[uuid.UUID]*entities.Transcript{}}
}

func (r *memoryTranscriptRepo) Create(_ context.Context, t *entities.Transcript) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records[t.ID] = t
	return nil
}

func (r *memoryTranscriptRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id], nil
}

func (r *memoryTranscriptRepo) FindBySource(_ context.Context, source string) (*entities.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.records {
		if t.Source == source {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memoryTranscriptRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

type memoryStore struct {
	objects map[string]string
	err     error
}

func (s *memoryStore) UploadText(_ context.Context, name, content string) error {
	if s.err != nil {
		return s.err
	}
	if s.objects == nil {
		s.objects = map[string]string{}
	}
	s.objects[name] = content
	return nil
}

func (s *memoryStore) GetFileURL(_ context.Context, name string, _ time.Duration) (string, error) {
	return "https://storage.local/" + name, nil
}

func TestService_CreateAndGet(t *testing.T) {
	repo := newMemoryTranscriptRepo()
	store := &memoryStore{}
	svc := NewService(repo, store, zap.NewNop())

	created, err := svc.Create(context.Background(), CreateInput{
		Source:   "call.json",
		Segments: mustParse(t, conversation),
		Speakers: []string{"Alice", "Bob"},
		Upload:   true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Text != "Bob: hi how are you \n\nAlice: great \n\nBob: bonza" {
		t.Fatalf("unexpected text %q", created.Text)
	}
	if created.SegmentCount != 4 || created.ParagraphCount != 3 || created.SpeakerCount != 2 {
		t.Fatalf("unexpected counts %d/%d/%d", created.SegmentCount, created.ParagraphCount, created.SpeakerCount)
	}
	if created.ObjectKey != ObjectName(created.ID) {
		t.Fatalf("unexpected object key %s", created.ObjectKey)
	}
	if store.objects[created.ObjectKey] != created.Text {
		t.Fatal("uploaded text does not match transcript")
	}
	if labels := created.SpeakerLabels.Data(); labels["SPEAKER_00"] != "Alice" {
		t.Fatalf("speaker labels not stored: %v", labels)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected transcript %s", got.ID)
	}

	url, err := svc.DownloadURL(context.Background(), got, time.Hour)
	if err != nil {
		t.Fatalf("download url failed: %v", err)
	}
	if url != "https://storage.local/"+created.ObjectKey {
		t.Fatalf("unexpected url %s", url)
	}
}

func TestService_GetMissing(t *testing.T) {
	svc := NewService(newMemoryTranscriptRepo(), nil, nil)
	_, err := svc.Get(context.Background(), uuid.New())
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_TRANSCRIPT_NOT_FOUND {
		t.Fatalf("expected TRANSCRIPT_NOT_FOUND, got %v", err)
	}
}

func TestService_CreateRejectsMalformedSegments(t *testing.T) {
	repo := newMemoryTranscriptRepo()
	store := &memoryStore{}
	svc := NewService(repo, store, zap.NewNop())

	text := "hi"
	_, err := svc.Create(context.Background(), CreateInput{
		Segments: []entities.Segment{{Text: &text}},
		Upload:   true,
	})
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_MALFORMED_SEGMENT {
		t.Fatalf("expected MALFORMED_SEGMENT, got %v", err)
	}
	if len(repo.records) != 0 || len(store.objects) != 0 {
		t.Fatal("nothing should be stored for malformed input")
	}
}

func TestService_CreateFailures(t *testing.T) {
	segments := []entities.Segment{entities.NewSegment("hello", 0, "SPEAKER_00")}

	svc := NewService(newMemoryTranscriptRepo(), nil, zap.NewNop())
	_, err := svc.Create(context.Background(), CreateInput{Segments: segments, Upload: true})
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected INVALID_ARGUMENT without storage, got %v", err)
	}

	repo := newMemoryTranscriptRepo()
	svc = NewService(repo, &memoryStore{err: stdErrors.New("bucket gone")}, zap.NewNop())
	_, err = svc.Create(context.Background(), CreateInput{Segments: segments, Upload: true})
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_INTEGRATION_STORAGE_FAILED {
		t.Fatalf("expected INTEGRATION_STORAGE_FAILED, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatal("record persisted after failed upload")
	}

	repo = newMemoryTranscriptRepo()
	repo.err = stdErrors.New("connection refused")
	svc = NewService(repo, nil, zap.NewNop())
	_, err = svc.Create(context.Background(), CreateInput{Segments: segments})
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_DB_QUERY_FAILED {
		t.Fatalf("expected DB_QUERY_FAILED, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newMemoryTranscriptRepo()
	svc := NewService(repo, nil, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Segments: mustParse(t, conversation)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.records[created.ID]; ok {
		t.Fatal("record should be gone")
	}

	err = svc.Delete(ctx, created.ID)
	if code, ok := errors.CodeOf(err); !ok || code != errors.ErrorCode_TRANSCRIPT_NOT_FOUND {
		t.Fatalf("expected TRANSCRIPT_NOT_FOUND, got %v", err)
	}
}

func TestService_FindBySource(t *testing.T) {
	repo := newMemoryTranscriptRepo()
	svc := NewService(repo, nil, zap.NewNop())
	ctx := context.Background()

	missing, err := svc.FindBySource(ctx, "assemblyai:abc")
	if err != nil || missing != nil {
		t.Fatalf("expected no record, got %v, %v", missing, err)
	}

	created, err := svc.Create(ctx, CreateInput{Source: "assemblyai:abc", Segments: mustParse(t, conversation)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	found, err := svc.FindBySource(ctx, "assemblyai:abc")
	if err != nil || found == nil || found.ID != created.ID {
		t.Fatalf("expected %s, got %v, %v", created.ID, found, err)
	}

	repo.err = stdErrors.New("connection reset")
	_, err = svc.FindBySource(ctx, "assemblyai:abc")
	if code, ok := errors.CodeOf(err); !ok || code != errors.ErrorCode_DB_QUERY_FAILED {
		t.Fatalf("expected DB_QUERY_FAILED, got %v", err)
	}
}

func TestService_DownloadURLWithoutUpload(t *testing.T) {
	svc := NewService(newMemoryTranscriptRepo(), &memoryStore{}, zap.NewNop())
	created, err := svc.Create(context.Background(), CreateInput{Segments: nil})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Text != "" || created.ParagraphCount != 0 {
		t.Fatalf("expected empty transcript, got %+v", created)
	}
	url, err := svc.DownloadURL(context.Background(), created, time.Minute)
	if err != nil || url != "" {
		t.Fatalf("expected no url, got %q, %v", url, err)
	}
}
