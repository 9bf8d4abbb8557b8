// Command kb_ingest loads regulation PDFs and the built-in system manual
// into the Milvus knowledge base.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"sarabun-assist/internal/config"
	"sarabun-assist/internal/embedding"
	"sarabun-assist/internal/kb"
	"sarabun-assist/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "path to the configuration file")
		pdfDir     = flag.String("pdf-dir", "", "directory of regulation PDFs to ingest")
		manual     = flag.Bool("manual", false, "ingest the built-in system usage manual")
		force      = flag.Bool("force", false, "drop and recreate collections before ingesting")
	)
	flag.Parse()

	if *pdfDir == "" && !*manual {
		log.Fatal("nothing to do: pass -pdf-dir and/or -manual")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("KBIngest")

	embedder, err := embedding.NewOllamaModel(cfg.Ollama.EmbedModel, cfg.Ollama.Host,
		time.Duration(cfg.Ollama.TimeoutSeconds)*time.Second)
	if err != nil {
		log.Fatalf("Failed to create embedding client: %v", err)
	}

	ctx := context.Background()
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.KB.ConnectTimeoutSeconds)*time.Second)
	store, err := kb.NewStore(connectCtx, cfg.KB.MilvusAddress, cfg.KB.EmbedDim, logger.New("KBStore"))
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to Milvus: %v", err)
	}
	defer store.Close()

	ingestor := kb.NewIngestor(store, embedder, cfg.KB.EmbedBatchSize, appLogger)

	if *manual {
		chunks := kb.SplitManual(kb.SystemUsageManual, "system_manual", cfg.KB.MinChunkChars)
		if err := ingestor.Ingest(ctx, cfg.KB.SystemCollection, chunks, *force); err != nil {
			log.Fatalf("Failed to ingest system manual: %v", err)
		}
	}

	if *pdfDir != "" {
		var chunks []kb.Chunk
		entries, err := os.ReadDir(*pdfDir)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *pdfDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				continue
			}
			path := filepath.Join(*pdfDir, entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				appLogger.WithError(err).WithField("file", path).Warn("skipping unreadable file")
				continue
			}
			fileChunks, err := kb.SplitPDF(data, entry.Name(), cfg.KB.ChunkWindowLines, cfg.KB.MinChunkChars)
			if err != nil {
				appLogger.WithError(err).WithField("file", path).Warn("skipping unparsable file")
				continue
			}
			appLogger.WithField("file", entry.Name()).WithField("chunks", len(fileChunks)).Info("file chunked")
			chunks = append(chunks, fileChunks...)
		}
		if err := ingestor.Ingest(ctx, cfg.KB.RegulationsCollection, chunks, *force); err != nil {
			log.Fatalf("Failed to ingest regulations: %v", err)
		}
	}

	appLogger.Info("Ingestion finished")
}
