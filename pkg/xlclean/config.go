package xlclean

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/width"
)

// Config is the YAML configuration of a cleaning run.
//
//	default_strategy: density
//	currency_markers: ["$"]
//	reports:
//	  - type: RentRoll
//	    strategy: marker
//	    sheets:
//	      2: density
type Config struct {
	DefaultStrategy  string         `yaml:"default_strategy"`
	CurrencyMarkers  []string       `yaml:"currency_markers"`
	MinNonEmptyCells int            `yaml:"min_nonempty_cells"`
	IgnoreHiddenRows bool           `yaml:"ignore_hidden_rows"`
	WidthMode        string         `yaml:"width_mode"`
	SplitHeaderLines bool           `yaml:"split_header_lines"`
	StripHyperlinks  bool           `yaml:"strip_hyperlinks"`
	CoerceNumbers    bool           `yaml:"coerce_numbers"`
	Fallback         *bool          `yaml:"fallback"`
	Reports          []ReportConfig `yaml:"reports"`
}

// ReportConfig selects strategies for one report type.
type ReportConfig struct {
	Type string `yaml:"type"`
	// Strategy applies to every sheet not listed in Sheets.
	Strategy string `yaml:"strategy"`
	// Sheets overrides the strategy by 0-based sheet index.
	Sheets map[int]string `yaml:"sheets"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every strategy and mode name.
func (c *Config) Validate() error {
	if c.DefaultStrategy != "" {
		if _, err := bounds.ParseKind(c.DefaultStrategy); err != nil {
			return fmt.Errorf("default_strategy: %w", err)
		}
	}
	if _, err := width.ParseMode(c.WidthMode); err != nil {
		return fmt.Errorf("width_mode: %w", err)
	}
	if c.MinNonEmptyCells < 0 {
		return fmt.Errorf("min_nonempty_cells must not be negative, got %d", c.MinNonEmptyCells)
	}
	for i, r := range c.Reports {
		if strings.TrimSpace(r.Type) == "" {
			return fmt.Errorf("reports[%d]: missing type", i)
		}
		if r.Strategy != "" {
			if _, err := bounds.ParseKind(r.Strategy); err != nil {
				return fmt.Errorf("reports[%d] %s: %w", i, r.Type, err)
			}
		}
		for idx, s := range r.Sheets {
			if _, err := bounds.ParseKind(s); err != nil {
				return fmt.Errorf("reports[%d] %s sheet %d: %w", i, r.Type, idx, err)
			}
		}
	}
	return nil
}

// StrategyFor implements StrategyFactory. Report types match case-insensitively.
// Names are assumed valid, as checked by Validate; an unknown name yields ""
// and so defers to Options.Strategy.
func (c *Config) StrategyFor(reportType string, sheetIndex int) bounds.Kind {
	for _, r := range c.Reports {
		if !strings.EqualFold(r.Type, reportType) {
			continue
		}
		if s, ok := r.Sheets[sheetIndex]; ok {
			k, _ := bounds.ParseKind(s)
			return k
		}
		if r.Strategy != "" {
			k, _ := bounds.ParseKind(r.Strategy)
			return k
		}
		break
	}
	k, _ := bounds.ParseKind(c.DefaultStrategy)
	return k
}

// Apply validates c, then copies the configured settings onto opts and
// installs c as the strategy factory. opts is untouched when c is invalid.
func (c *Config) Apply(opts *Options) error {
	if err := c.Validate(); err != nil {
		return err
	}
	opts.Factory = c
	if c.DefaultStrategy != "" {
		opts.Strategy, _ = bounds.ParseKind(c.DefaultStrategy)
	}
	if len(c.CurrencyMarkers) > 0 {
		opts.Bounds.Markers = c.CurrencyMarkers
	}
	if c.MinNonEmptyCells > 0 {
		opts.Bounds.MinNonEmptyCells = c.MinNonEmptyCells
	}
	opts.Bounds.IgnoreHiddenRows = opts.Bounds.IgnoreHiddenRows || c.IgnoreHiddenRows
	if c.WidthMode != "" {
		opts.WidthMode, _ = width.ParseMode(c.WidthMode)
	}
	opts.SplitHeaderLines = opts.SplitHeaderLines || c.SplitHeaderLines
	opts.StripHyperlinks = opts.StripHyperlinks || c.StripHyperlinks
	opts.CoerceNumbers = opts.CoerceNumbers || c.CoerceNumbers
	if c.Fallback != nil {
		opts.Fallback = c.Fallback
	}
	return nil
}
