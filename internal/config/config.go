package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listen settings.
type ServerConfig struct {
	Address string `yaml:"address"` // listen address, e.g. ":8080"
	Mode    string `yaml:"mode"`    // gin mode: "debug" or "release"
}

// OllamaConfig holds the connection settings for the Ollama service.
type OllamaConfig struct {
	Host           string `yaml:"host"`           // base URL, e.g. "http://ollama:11434"
	ChatModel      string `yaml:"chatModel"`      // chat model identifier
	EmbedModel     string `yaml:"embedModel"`     // embedding model identifier
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // HTTP client timeout (default 300)
}

// OCRConfig holds the settings for the external OCR service.
type OCRConfig struct {
	Endpoint           string `yaml:"endpoint"`           // e.g. "http://typhoon-ocr:8000/process"
	PageTimeoutSeconds int    `yaml:"pageTimeoutSeconds"` // per-page timeout (default 180)
	RenderDPI          int    `yaml:"renderDPI"`          // rasterisation resolution (default 300)
	MaxParallelRenders int    `yaml:"maxParallelRenders"` // bounded render pool size (default 4)
}

// NormaliseConfig tunes the OCR text normaliser.
type NormaliseConfig struct {
	FuzzyEnabled   bool    `yaml:"fuzzyEnabled"`   // enable fuzzy abbreviation repair
	FuzzyThreshold float64 `yaml:"fuzzyThreshold"` // minimum similarity in [0,1] (default 0.8)
	MinTokenLength int     `yaml:"minTokenLength"` // shortest token considered for fuzzy repair (default 5)
}

// KBConfig holds the knowledge-base / vector store settings.
type KBConfig struct {
	MilvusAddress         string `yaml:"milvusAddress"`         // e.g. "milvus:19530"
	RegulationsCollection string `yaml:"regulationsCollection"` // default "rtarf_knowledge_base"
	SystemCollection      string `yaml:"systemCollection"`      // default "system_usage"
	EmbedBatchSize        int    `yaml:"embedBatchSize"`        // embedding batch size (default 32)
	ChunkWindowLines      int    `yaml:"chunkWindowLines"`      // lines per PDF chunk (default 15)
	MinChunkChars         int    `yaml:"minChunkChars"`         // drop shorter chunks (default 50)
	TopK                  int    `yaml:"topK"`                  // passages retrieved per query (default 5)
	ConnectTimeoutSeconds int    `yaml:"connectTimeoutSeconds"` // vector store connect timeout (default 20)
	EmbedDim              int    `yaml:"embedDim"`              // embedding vector dimension (default 1024)
	RoutingEnabled        bool   `yaml:"routingEnabled"`        // classify questions before retrieval
}

// FeedbackConfig locates the append-only feedback log.
type FeedbackConfig struct {
	Directory string `yaml:"directory"` // default "feedback"
	Filename  string `yaml:"filename"`  // default "feedback_log.csv"
}

// ExportConfig controls docx rendering of final drafts.
type ExportConfig struct {
	FontName     string   `yaml:"fontName"`     // default "TH SarabunPSK"
	FontSizePt   float64  `yaml:"fontSizePt"`   // default 16
	OurUnitNames []string `yaml:"ourUnitNames"` // replying units offered to the user
}

// UnidocConfig carries the unidoc metered license key. Both the docx
// writer (unioffice) and the PDF rasteriser (unipdf) refuse to run
// without one; see https://cloud.unidoc.io.
type UnidocConfig struct {
	LicenseKey string `yaml:"licenseKey"`
}

// LoggerConfig sets the log level.
type LoggerConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	OCR       OCRConfig       `yaml:"ocr"`
	Normalise NormaliseConfig `yaml:"normalise"`
	KB        KBConfig        `yaml:"kb"`
	Feedback  FeedbackConfig  `yaml:"feedback"`
	Export    ExportConfig    `yaml:"export"`
	Unidoc    UnidocConfig    `yaml:"unidoc"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// LoadConfig reads and parses the YAML configuration file at path,
// applying documented defaults for unset values.
func LoadConfig(path string) (*AppConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file '%s': %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Ollama.Host == "" {
		c.Ollama.Host = "http://localhost:11434"
	}
	if c.Ollama.TimeoutSeconds <= 0 {
		c.Ollama.TimeoutSeconds = 300
	}
	if c.OCR.PageTimeoutSeconds <= 0 {
		c.OCR.PageTimeoutSeconds = 180
	}
	if c.OCR.RenderDPI <= 0 {
		c.OCR.RenderDPI = 300
	}
	if c.OCR.MaxParallelRenders <= 0 {
		c.OCR.MaxParallelRenders = 4
	}
	if c.Normalise.FuzzyThreshold <= 0 {
		c.Normalise.FuzzyThreshold = 0.8
	}
	if c.Normalise.MinTokenLength <= 0 {
		c.Normalise.MinTokenLength = 5
	}
	if c.KB.RegulationsCollection == "" {
		c.KB.RegulationsCollection = "rtarf_knowledge_base"
	}
	if c.KB.SystemCollection == "" {
		c.KB.SystemCollection = "system_usage"
	}
	if c.KB.EmbedBatchSize <= 0 {
		c.KB.EmbedBatchSize = 32
	}
	if c.KB.ChunkWindowLines <= 0 {
		c.KB.ChunkWindowLines = 15
	}
	if c.KB.MinChunkChars <= 0 {
		c.KB.MinChunkChars = 50
	}
	if c.KB.TopK <= 0 {
		c.KB.TopK = 5
	}
	if c.KB.ConnectTimeoutSeconds <= 0 {
		c.KB.ConnectTimeoutSeconds = 20
	}
	if c.KB.EmbedDim <= 0 {
		c.KB.EmbedDim = 1024
	}
	if c.Feedback.Directory == "" {
		c.Feedback.Directory = "feedback"
	}
	if c.Feedback.Filename == "" {
		c.Feedback.Filename = "feedback_log.csv"
	}
	if c.Export.FontName == "" {
		c.Export.FontName = "TH SarabunPSK"
	}
	if c.Export.FontSizePt <= 0 {
		c.Export.FontSizePt = 16
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
}

func (c *AppConfig) validate() error {
	if c.Ollama.ChatModel == "" {
		return fmt.Errorf("config: ollama.chatModel is required")
	}
	if c.Normalise.FuzzyThreshold > 1 {
		return fmt.Errorf("config: normalise.fuzzyThreshold must be in (0,1], got %v", c.Normalise.FuzzyThreshold)
	}
	return nil
}
