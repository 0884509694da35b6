// Package config holds the typed run configuration, sourced from flags,
// PDFPNG_* environment variables and defaults through viper.
package config

import "github.com/spf13/viper"

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level      string
	Pretty     bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// RenderConfig controls document-to-image rendering.
type RenderConfig struct {
	// Scale is the linear oversampling factor; 1.0 renders at the
	// document's 72 DPI base, 4.0 at 288 DPI.
	Scale float64
}

// AssembleConfig controls image-to-document assembly.
type AssembleConfig struct {
	// FallbackName is the output stem used when stripping the page index
	// from the first image name leaves nothing.
	FallbackName string
}

// ScanConfig controls folder scanning and classification.
type ScanConfig struct {
	DocumentExts  []string
	ImageExts     []string
	VerifyContent bool
}

// RunConfig controls run-level behavior.
type RunConfig struct {
	OutputDir string // empty means alongside the input folder
	DryRun    bool
	Pause     bool
}

// Config is the top-level configuration.
type Config struct {
	Logging  LoggingConfig
	Render   RenderConfig
	Assemble AssembleConfig
	Scan     ScanConfig
	Run      RunConfig
}

// SetDefaults registers every configuration default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("log.file", "logs/pdf-png-converter.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 10)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("render.scale", 4.0)

	v.SetDefault("assemble.fallback_name", "combined")

	v.SetDefault("scan.document_exts", []string{".pdf"})
	v.SetDefault("scan.image_exts", []string{".png"})
	v.SetDefault("scan.verify_content", true)

	v.SetDefault("run.output_dir", "")
	v.SetDefault("run.dry_run", false)
	v.SetDefault("run.pause", false)
}

// Load materializes the typed configuration from v.
func Load(v *viper.Viper) Config {
	cfg := Config{}

	cfg.Logging = LoggingConfig{
		Level:      v.GetString("log.level"),
		Pretty:     v.GetBool("log.pretty"),
		File:       v.GetString("log.file"),
		MaxSizeMB:  v.GetInt("log.max_size_mb"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAgeDays: v.GetInt("log.max_age_days"),
		Compress:   v.GetBool("log.compress"),
	}

	cfg.Render = RenderConfig{
		Scale: v.GetFloat64("render.scale"),
	}
	if cfg.Render.Scale <= 0 {
		cfg.Render.Scale = 4.0
	}

	cfg.Assemble = AssembleConfig{
		FallbackName: v.GetString("assemble.fallback_name"),
	}
	if cfg.Assemble.FallbackName == "" {
		cfg.Assemble.FallbackName = "combined"
	}

	cfg.Scan = ScanConfig{
		DocumentExts:  v.GetStringSlice("scan.document_exts"),
		ImageExts:     v.GetStringSlice("scan.image_exts"),
		VerifyContent: v.GetBool("scan.verify_content"),
	}

	cfg.Run = RunConfig{
		OutputDir: v.GetString("run.output_dir"),
		DryRun:    v.GetBool("run.dry_run"),
		Pause:     v.GetBool("run.pause"),
	}

	return cfg
}
