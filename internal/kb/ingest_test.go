package kb

import (
	"context"
	"testing"

	"sarabun-assist/pkg/logger"
)

type fakeChunkStore struct {
	exists  bool
	dropped bool
	upserts int
	rows    int
}

func (f *fakeChunkStore) EnsureCollection(ctx context.Context, name string, force bool) (bool, error) {
	if f.exists && !force {
		return false, nil
	}
	if f.exists {
		f.dropped = true
	}
	f.exists = true
	return true, nil
}

func (f *fakeChunkStore) Upsert(ctx context.Context, collection string, ids []string, chunks []Chunk, vectors [][]float32) error {
	f.upserts++
	f.rows += len(chunks)
	return nil
}

type fakeEmbedder struct {
	batches int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.batches++
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func testChunks(n int) []Chunk {
	chunks := make([]Chunk, n)
	for i := range chunks {
		chunks[i] = Chunk{Text: "เนื้อหา", SourceFile: "doc.pdf", PageNumber: i + 1}
	}
	return chunks
}

func TestIngestSkipsExistingCollection(t *testing.T) {
	store := &fakeChunkStore{exists: true}
	embedder := &fakeEmbedder{}
	in := NewIngestor(store, embedder, 2, logger.New("test"))

	if err := in.Ingest(context.Background(), "rtarf_knowledge_base", testChunks(5), false); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if store.upserts != 0 {
		t.Errorf("upserts = %d, want 0 when the collection already exists", store.upserts)
	}
	if embedder.batches != 0 {
		t.Errorf("embed batches = %d, want 0 when the collection already exists", embedder.batches)
	}
}

func TestIngestForceRecreates(t *testing.T) {
	store := &fakeChunkStore{exists: true}
	in := NewIngestor(store, &fakeEmbedder{}, 2, logger.New("test"))

	if err := in.Ingest(context.Background(), "rtarf_knowledge_base", testChunks(5), true); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if !store.dropped {
		t.Error("expected the existing collection to be dropped with force set")
	}
	if store.rows != 5 {
		t.Errorf("stored rows = %d, want 5", store.rows)
	}
}

func TestIngestBatches(t *testing.T) {
	store := &fakeChunkStore{}
	embedder := &fakeEmbedder{}
	in := NewIngestor(store, embedder, 2, logger.New("test"))

	if err := in.Ingest(context.Background(), "rtarf_knowledge_base", testChunks(5), false); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if store.upserts != 3 {
		t.Errorf("upserts = %d, want 3 batches of at most 2", store.upserts)
	}
	if store.rows != 5 || embedder.batches != 3 {
		t.Errorf("rows = %d, embed batches = %d, want 5 rows in 3 batches", store.rows, embedder.batches)
	}
}
