package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	officelicense "github.com/unidoc/unioffice/v2/common/license"
	pdflicense "github.com/unidoc/unipdf/v3/common/license"

	"sarabun-assist/internal/api"
	"sarabun-assist/internal/chatbot"
	"sarabun-assist/internal/config"
	"sarabun-assist/internal/embedding"
	"sarabun-assist/internal/export"
	"sarabun-assist/internal/extract"
	"sarabun-assist/internal/feedback"
	"sarabun-assist/internal/kb"
	"sarabun-assist/internal/llm"
	"sarabun-assist/internal/normalise"
	"sarabun-assist/internal/ocr"
	"sarabun-assist/internal/reply"
	"sarabun-assist/internal/workflow"
	"sarabun-assist/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("AssistantService")
	appLogger.Info("Starting assistant service...")

	// unioffice refuses to save and unipdf refuses to render without a
	// metered license key. See https://cloud.unidoc.io.
	if key := cfg.Unidoc.LicenseKey; key != "" {
		if err := officelicense.SetMeteredKey(key); err != nil {
			log.Fatalf("Failed to set unioffice license: %v", err)
		}
		if err := pdflicense.SetMeteredKey(key); err != nil {
			log.Fatalf("Failed to set unipdf license: %v", err)
		}
	} else {
		appLogger.Warn("unidoc.licenseKey not set, docx export and PDF rendering will fail")
	}

	ollamaTimeout := time.Duration(cfg.Ollama.TimeoutSeconds) * time.Second
	chatter, err := llm.NewOllama(cfg.Ollama.ChatModel, cfg.Ollama.Host, ollamaTimeout, logger.New("Ollama"))
	if err != nil {
		log.Fatalf("Failed to create Ollama client: %v", err)
	}
	embedder, err := embedding.NewOllamaModel(cfg.Ollama.EmbedModel, cfg.Ollama.Host, ollamaTimeout)
	if err != nil {
		log.Fatalf("Failed to create embedding client: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.KB.ConnectTimeoutSeconds)*time.Second)
	store, err := kb.NewStore(connectCtx, cfg.KB.MilvusAddress, cfg.KB.EmbedDim, logger.New("KBStore"))
	cancel()
	if err != nil {
		// The drafting workflow works without the knowledge base; only
		// the chatbot degrades.
		appLogger.WithError(err).Warn("vector store unavailable, chatbot disabled")
	} else {
		defer store.Close()
	}

	rasterizer := ocr.NewRasterizer(cfg.OCR.RenderDPI, cfg.OCR.MaxParallelRenders, ocr.NopPreprocessor{})
	ocrClient := ocr.NewClient(cfg.OCR.Endpoint, time.Duration(cfg.OCR.PageTimeoutSeconds)*time.Second, logger.New("OCR"))
	normaliser := normalise.New(cfg.Normalise, logger.New("Normalise"))
	extractor := extract.NewExtractor(chatter, logger.New("Extract"))

	ourUnit := ""
	if len(cfg.Export.OurUnitNames) > 0 {
		ourUnit = cfg.Export.OurUnitNames[0]
	}
	generator := reply.NewGenerator(chatter, ourUnit, logger.New("Reply"))

	fb := feedback.NewLogger(cfg.Feedback.Directory, cfg.Feedback.Filename, logger.New("Feedback"))
	exporter := export.NewDocxWriter(cfg.Export.FontName, cfg.Export.FontSizePt)

	controller := workflow.NewController(rasterizer, ocrClient, normaliser, extractor, generator, fb, exporter, logger.New("Workflow"))

	var bot *chatbot.Bot
	if store != nil {
		bot = chatbot.New(chatter, embedder, store, chatbot.Config{
			RegulationsCollection: cfg.KB.RegulationsCollection,
			SystemCollection:      cfg.KB.SystemCollection,
			TopK:                  cfg.KB.TopK,
			RoutingEnabled:        cfg.KB.RoutingEnabled,
		}, logger.New("Chatbot"))
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	api.New(controller, generator, bot, logger.New("API")).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		appLogger.WithField("address", cfg.Server.Address).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("forced shutdown")
	}
	appLogger.Info("Server stopped")
}
