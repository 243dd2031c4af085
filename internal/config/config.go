// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Editor   EditorConfig   `yaml:"editor"`
	Geometry GeometryConfig `yaml:"geometry"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds the application window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EditorConfig holds source editor behavior settings.
type EditorConfig struct {
	FontSize        int  `yaml:"font_size"`
	TabWidth        int  `yaml:"tab_width"`
	AutoEval        bool `yaml:"auto_eval"`
	AutoEvalDelayMS int  `yaml:"auto_eval_delay_ms"`
}

// GeometryConfig selects the geometry backend. "sdfx" is always available;
// "manifold" requires a build with -tags=manifold and falls back to sdfx
// otherwise.
type GeometryConfig struct {
	Kernel string `yaml:"kernel"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Gable",
		},
		Editor: EditorConfig{
			FontSize:        13,
			TabWidth:        2,
			AutoEval:        true,
			AutoEvalDelayMS: 400,
		},
		Geometry: GeometryConfig{
			Kernel: "sdfx",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
