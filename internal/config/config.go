package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Paths       PathsConfig       `yaml:"paths"`
	Database    DatabaseConfig    `yaml:"database"`
	AWS         AWSConfig         `yaml:"aws"`
	Queue       QueueConfig       `yaml:"queue"`
	Storage     StorageConfig     `yaml:"storage"`
	Acquisition AcquisitionConfig `yaml:"acquisition"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Renderer    RendererConfig    `yaml:"renderer"`
	Server      ServerConfig      `yaml:"server"`
	Trigger     TriggerConfig     `yaml:"trigger"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
	File   string `yaml:"file" env:"LOG_FILE"`
}

type PathsConfig struct {
	Temp  string `yaml:"temp" env:"TEMP_DIR"`
	Inbox string `yaml:"inbox" env:"INBOX_DIR"`
}

type DatabaseConfig struct {
	Path          string        `yaml:"path" env:"DATABASE_PATH"`
	RetryAttempts uint          `yaml:"retry_attempts"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
}

// AWSConfig holds the credentials shared by the queue and object storage
// clients. Both services are reached through S3/SQS-compatible endpoints.
type AWSConfig struct {
	AccessKeyID     string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`
}

type QueueConfig struct {
	URL         string `yaml:"url" env:"QUEUE_URL"`
	Endpoint    string `yaml:"endpoint" env:"QUEUE_ENDPOINT"`
	Region      string `yaml:"region" env:"QUEUE_REGION"`
	WaitSeconds int64  `yaml:"wait_seconds"`
}

type StorageConfig struct {
	Bucket         string        `yaml:"bucket" env:"BUCKET_NAME"`
	Endpoint       string        `yaml:"endpoint" env:"STORAGE_ENDPOINT"`
	Region         string        `yaml:"region" env:"STORAGE_REGION"`
	ForcePathStyle bool          `yaml:"force_path_style"`
	PresignTTL     time.Duration `yaml:"presign_ttl"`
}

type AcquisitionConfig struct {
	ResolveTimeout  time.Duration `yaml:"resolve_timeout"`
	DownloadTimeout time.Duration `yaml:"download_timeout"`
	MinBytes        int64         `yaml:"min_bytes"`
	PublicAPIURL    string        `yaml:"public_api_url"`
	ScrapeHosts     []string      `yaml:"scrape_hosts"`
	APIHosts        []string      `yaml:"api_hosts"`
}

type FFmpegConfig struct {
	BinaryPath string        `yaml:"binary_path" env:"FFMPEG_BINARY"`
	Timeout    time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	APIKeys  []string `yaml:"api_keys" env:"GEMINI_API_KEYS" envSeparator:","`
	Endpoint string   `yaml:"endpoint"`
}

type TranscriberConfig struct {
	Model           string        `yaml:"model"`
	Language        string        `yaml:"language"`
	MaxAudioBytes   int64         `yaml:"max_audio_bytes"`
	TruncateSeconds int           `yaml:"truncate_seconds"`
	MinChars        int           `yaml:"min_chars"`
	Timeout         time.Duration `yaml:"timeout"`
}

type SummarizerConfig struct {
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

type RendererConfig struct {
	Format       string `yaml:"format"`
	FontPath     string `yaml:"font_path"`
	BoldFontPath string `yaml:"bold_font_path"`
}

type ServerConfig struct {
	WorkerAddr string `yaml:"worker_addr" env:"WORKER_ADDR"`
	WebAddr    string `yaml:"web_addr" env:"WEB_ADDR"`
}

type TriggerConfig struct {
	URL      string        `yaml:"url" env:"WORKER_URL"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, applies environment overrides and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Queue.URL == "" {
		return fmt.Errorf("queue.url is required")
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required")
	}
	if c.Renderer.Format != "" && c.Renderer.Format != "pdf" && c.Renderer.Format != "docx" {
		return fmt.Errorf("renderer.format must be pdf or docx, got %q", c.Renderer.Format)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Database.RetryAttempts == 0 {
		c.Database.RetryAttempts = 5
	}
	if c.Database.RetryDelay == 0 {
		c.Database.RetryDelay = 200 * time.Millisecond
	}
	if c.Queue.Region == "" {
		c.Queue.Region = "ru-central1"
	}
	if c.Queue.WaitSeconds == 0 {
		c.Queue.WaitSeconds = 5
	}
	if c.Storage.Region == "" {
		c.Storage.Region = "ru-central1"
	}
	if c.Storage.PresignTTL == 0 {
		c.Storage.PresignTTL = time.Hour
	}
	if c.Acquisition.ResolveTimeout == 0 {
		c.Acquisition.ResolveTimeout = 10 * time.Second
	}
	if c.Acquisition.DownloadTimeout == 0 {
		c.Acquisition.DownloadTimeout = 30 * time.Minute
	}
	if c.Acquisition.MinBytes == 0 {
		c.Acquisition.MinBytes = 1000
	}
	if c.Acquisition.PublicAPIURL == "" {
		c.Acquisition.PublicAPIURL = "https://cloud-api.yandex.net/v1/disk/public/resources/download"
	}
	if len(c.Acquisition.ScrapeHosts) == 0 {
		c.Acquisition.ScrapeHosts = []string{"360.yandex"}
	}
	if len(c.Acquisition.APIHosts) == 0 {
		c.Acquisition.APIHosts = []string{"disk.yandex", "yadi.sk"}
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.Timeout == 0 {
		c.FFmpeg.Timeout = 10 * time.Minute
	}
	if c.Gemini.Endpoint == "" {
		c.Gemini.Endpoint = "https://generativelanguage.googleapis.com"
	}
	if c.Transcriber.Model == "" {
		c.Transcriber.Model = "gemini-2.5-flash"
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "ru-RU"
	}
	if c.Transcriber.MaxAudioBytes == 0 {
		c.Transcriber.MaxAudioBytes = 1_000_000
	}
	if c.Transcriber.TruncateSeconds == 0 {
		c.Transcriber.TruncateSeconds = 30
	}
	if c.Transcriber.MinChars == 0 {
		c.Transcriber.MinChars = 50
	}
	if c.Transcriber.Timeout == 0 {
		c.Transcriber.Timeout = 2 * time.Minute
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Summarizer.Temperature == 0 {
		c.Summarizer.Temperature = 0.3
	}
	if c.Summarizer.Timeout == 0 {
		c.Summarizer.Timeout = 2 * time.Minute
	}
	if c.Renderer.Format == "" {
		c.Renderer.Format = "pdf"
	}
	if c.Renderer.FontPath == "" {
		c.Renderer.FontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	}
	if c.Renderer.BoldFontPath == "" {
		c.Renderer.BoldFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	}
	if c.Server.WorkerAddr == "" {
		c.Server.WorkerAddr = ":8080"
	}
	if c.Server.WebAddr == "" {
		c.Server.WebAddr = ":8000"
	}
	if c.Trigger.Interval == 0 {
		c.Trigger.Interval = time.Minute
	}
	if c.Trigger.Timeout == 0 {
		c.Trigger.Timeout = 10 * time.Minute
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
