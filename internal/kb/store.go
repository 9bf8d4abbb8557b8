package kb

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

const (
	fieldID         = "id"
	fieldText       = "text"
	fieldSourceFile = "source_file"
	fieldPageNumber = "page_number"
	fieldEmbedding  = "embedding"
)

// SearchHit is one retrieved passage with its cosine score.
type SearchHit struct {
	Text       string
	SourceFile string
	PageNumber int
	Score      float32
}

// Store wraps the Milvus collections holding knowledge-base passages.
type Store struct {
	cli client.Client
	dim int
	log *logger.Logger
}

func NewStore(ctx context.Context, address string, dim int, log *logger.Logger) (*Store, error) {
	cli, err := client.NewClient(ctx, client.Config{Address: address})
	if err != nil {
		return nil, fmt.Errorf("%w: connect %s: %v", models.ErrVectorStoreUnavailable, address, err)
	}
	return &Store{cli: cli, dim: dim, log: log}, nil
}

var _ ChunkStore = (*Store)(nil)

func (s *Store) Close() error {
	return s.cli.Close()
}

// EnsureCollection creates the collection with a cosine HNSW index and
// reports whether it built a fresh one. With force set, an existing
// collection is dropped first so re-ingestion starts from a clean slate;
// without force an existing collection is left as is and created=false
// tells the caller to skip ingestion.
func (s *Store) EnsureCollection(ctx context.Context, name string, force bool) (created bool, err error) {
	has, err := s.cli.HasCollection(ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: has collection: %v", models.ErrVectorStoreUnavailable, err)
	}
	if has && !force {
		return false, nil
	}
	if has {
		if err := s.cli.DropCollection(ctx, name); err != nil {
			return false, fmt.Errorf("%w: drop collection: %v", models.ErrVectorStoreUnavailable, err)
		}
		s.log.WithField("collection", name).Info("existing collection dropped")
	}

	schema := entity.NewSchema().WithName(name).
		WithField(entity.NewField().WithName(fieldID).WithDataType(entity.FieldTypeVarChar).WithMaxLength(64).WithIsPrimaryKey(true)).
		WithField(entity.NewField().WithName(fieldText).WithDataType(entity.FieldTypeVarChar).WithMaxLength(65535)).
		WithField(entity.NewField().WithName(fieldSourceFile).WithDataType(entity.FieldTypeVarChar).WithMaxLength(512)).
		WithField(entity.NewField().WithName(fieldPageNumber).WithDataType(entity.FieldTypeInt64)).
		WithField(entity.NewField().WithName(fieldEmbedding).WithDataType(entity.FieldTypeFloatVector).WithDim(int64(s.dim)))

	if err := s.cli.CreateCollection(ctx, schema, entity.DefaultShardNumber); err != nil {
		return false, fmt.Errorf("%w: create collection: %v", models.ErrVectorStoreUnavailable, err)
	}

	idx, err := entity.NewIndexHNSW(entity.COSINE, 16, 200)
	if err != nil {
		return false, fmt.Errorf("%w: build index params: %v", models.ErrVectorStoreUnavailable, err)
	}
	if err := s.cli.CreateIndex(ctx, name, fieldEmbedding, idx, false); err != nil {
		return false, fmt.Errorf("%w: create index: %v", models.ErrVectorStoreUnavailable, err)
	}
	if err := s.cli.LoadCollection(ctx, name, false); err != nil {
		return false, fmt.Errorf("%w: load collection: %v", models.ErrVectorStoreUnavailable, err)
	}
	s.log.WithField("collection", name).Info("collection ready")
	return true, nil
}

// Upsert inserts passages with their embeddings and flushes so they are
// searchable before the call returns.
func (s *Store) Upsert(ctx context.Context, collection string, ids []string, chunks []Chunk, vectors [][]float32) error {
	if len(ids) != len(chunks) || len(chunks) != len(vectors) {
		return fmt.Errorf("mismatched upsert lengths: %d ids, %d chunks, %d vectors", len(ids), len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	sources := make([]string, len(chunks))
	pages := make([]int64, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
		sources[i] = c.SourceFile
		pages[i] = int64(c.PageNumber)
	}

	_, err := s.cli.Insert(ctx, collection, "",
		entity.NewColumnVarChar(fieldID, ids),
		entity.NewColumnVarChar(fieldText, texts),
		entity.NewColumnVarChar(fieldSourceFile, sources),
		entity.NewColumnInt64(fieldPageNumber, pages),
		entity.NewColumnFloatVector(fieldEmbedding, s.dim, vectors),
	)
	if err != nil {
		return fmt.Errorf("%w: insert: %v", models.ErrVectorStoreUnavailable, err)
	}
	if err := s.cli.Flush(ctx, collection, false); err != nil {
		return fmt.Errorf("%w: flush: %v", models.ErrVectorStoreUnavailable, err)
	}
	return nil
}

// Search returns the topK passages nearest to the query vector by cosine
// similarity.
func (s *Store) Search(ctx context.Context, collection string, vector []float32, topK int) ([]SearchHit, error) {
	sp, err := entity.NewIndexHNSWSearchParam(64)
	if err != nil {
		return nil, fmt.Errorf("%w: search params: %v", models.ErrVectorStoreUnavailable, err)
	}

	results, err := s.cli.Search(ctx, collection, nil, "",
		[]string{fieldText, fieldSourceFile, fieldPageNumber},
		[]entity.Vector{entity.FloatVector(vector)},
		fieldEmbedding, entity.COSINE, topK, sp,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", models.ErrVectorStoreUnavailable, err)
	}

	var hits []SearchHit
	for _, rs := range results {
		textCol := findColumn(rs.Fields, fieldText)
		sourceCol := findColumn(rs.Fields, fieldSourceFile)
		pageCol := findColumn(rs.Fields, fieldPageNumber)
		for i := 0; i < rs.ResultCount; i++ {
			hit := SearchHit{Score: rs.Scores[i]}
			if textCol != nil {
				if v, err := textCol.GetAsString(i); err == nil {
					hit.Text = v
				}
			}
			if sourceCol != nil {
				if v, err := sourceCol.GetAsString(i); err == nil {
					hit.SourceFile = v
				}
			}
			if pageCol != nil {
				if v, err := pageCol.GetAsInt64(i); err == nil {
					hit.PageNumber = int(v)
				}
			}
			hits = append(hits, hit)
		}
	}
	return hits, nil
}

func findColumn(fields []entity.Column, name string) entity.Column {
	for _, f := range fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
