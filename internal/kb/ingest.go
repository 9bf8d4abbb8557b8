// Package kb ingests regulation PDFs and the system manual into Milvus and
// serves similarity search over the stored passages.
package kb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sarabun-assist/internal/embedding"
	"sarabun-assist/pkg/logger"
)

// ChunkStore is the slice of Store the ingestor needs.
type ChunkStore interface {
	EnsureCollection(ctx context.Context, name string, force bool) (bool, error)
	Upsert(ctx context.Context, collection string, ids []string, chunks []Chunk, vectors [][]float32) error
}

// Ingestor embeds chunks in batches and writes them to a collection.
type Ingestor struct {
	store     ChunkStore
	embedder  embedding.Embedder
	batchSize int
	log       *logger.Logger
}

func NewIngestor(store ChunkStore, embedder embedding.Embedder, batchSize int, log *logger.Logger) *Ingestor {
	if batchSize <= 0 {
		batchSize = 32
	}
	return &Ingestor{store: store, embedder: embedder, batchSize: batchSize, log: log}
}

// Ingest writes chunks into the named collection. With force set the
// collection is recreated first. Without force an already populated
// collection is left alone so repeated runs do not duplicate the corpus.
func (in *Ingestor) Ingest(ctx context.Context, collection string, chunks []Chunk, force bool) error {
	created, err := in.store.EnsureCollection(ctx, collection, force)
	if err != nil {
		return err
	}
	if !created {
		in.log.WithField("collection", collection).Info("collection already exists, no action needed")
		return nil
	}
	if len(chunks) == 0 {
		in.log.WithField("collection", collection).Warn("nothing to ingest")
		return nil
	}

	for start := 0; start < len(chunks); start += in.batchSize {
		end := start + in.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		ids := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Text
			ids[i] = uuid.NewString()
		}

		vectors, err := in.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch %d-%d: %w", start, end, err)
		}
		if err := in.store.Upsert(ctx, collection, ids, batch, vectors); err != nil {
			return err
		}
		in.log.WithField("collection", collection).
			WithField("upserted", end).
			WithField("total", len(chunks)).
			Debug("batch stored")
	}

	in.log.WithField("collection", collection).
		WithField("chunks", len(chunks)).
		Info("ingestion complete")
	return nil
}
