package ucoins_parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/ucoins-backend/internal/ucoins"
)

// Config holds ucoins-parse settings.
type Config struct {
	TransactionsPath  string `yaml:"transactions_path"  env:"UCOINS_TRANSACTIONS_PATH"`
	TransactionsSheet string `yaml:"transactions_sheet" env:"UCOINS_TRANSACTIONS_SHEET"`
	ReferencePath     string `yaml:"reference_path"     env:"UCOINS_REFERENCE_PATH"`
	ReferenceSheet    string `yaml:"reference_sheet"    env:"UCOINS_REFERENCE_SHEET"`
	// ReferenceColumn is the header of the name column; empty means the first column.
	ReferenceColumn string `yaml:"reference_column" env:"UCOINS_REFERENCE_COLUMN"`

	Columns     ColumnsConfig `yaml:"columns"`
	TotalMarker string        `yaml:"total_marker" env:"UCOINS_TOTAL_MARKER" env-default:"Итог за сувенирку"`

	StrictReference bool `yaml:"strict_reference" env:"UCOINS_STRICT_REFERENCE"`
	// KeepReferenceOrder skips sorting the reference names; the sheet must
	// then already be ordered by surname.
	KeepReferenceOrder bool `yaml:"keep_reference_order" env:"UCOINS_KEEP_REFERENCE_ORDER"`
	RejectDuplicates   bool `yaml:"reject_duplicates"    env:"UCOINS_REJECT_DUPLICATES"`
	Workers            int  `yaml:"workers"              env:"UCOINS_WORKERS"              env-default:"1"`

	OutputDir  string `yaml:"output_dir"  env:"UCOINS_OUTPUT_DIR"  env-default:"."`
	ResultFile string `yaml:"result_file" env:"UCOINS_RESULT_FILE" env-default:"result.json"`
	ErrorsFile string `yaml:"errors_file" env:"UCOINS_ERRORS_FILE" env-default:"ErrorList.json"`
	// WarningsFile is written only when set.
	WarningsFile string `yaml:"warnings_file" env:"UCOINS_WARNINGS_FILE"`
	Indent       int    `yaml:"indent"        env:"UCOINS_INDENT"        env-default:"4"`
}

// ColumnsConfig names the transaction sheet columns.
type ColumnsConfig struct {
	Name            string `yaml:"name"             env:"UCOINS_COLUMN_NAME"             env-default:"ФИО"`
	ReplenishReason string `yaml:"replenish_reason" env:"UCOINS_COLUMN_REPLENISH_REASON" env-default:"Активность"`
	ReplenishAmount string `yaml:"replenish_amount" env:"UCOINS_COLUMN_REPLENISH_AMOUNT" env-default:"Ucoins"`
	WriteOffReason  string `yaml:"write_off_reason" env:"UCOINS_COLUMN_WRITE_OFF_REASON" env-default:"Сувенирка"`
	WriteOffAmount  string `yaml:"write_off_amount" env:"UCOINS_COLUMN_WRITE_OFF_AMOUNT" env-default:"Сумма"`
}

// LoadConfig reads config from YAML file or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("ucoins-parse config: %w", err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("ucoins-parse config: file %s not found", path)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ucoins-parse config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings that do not depend on the file system.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TransactionsPath) == "" {
		return fmt.Errorf("transactions_path is required")
	}
	if strings.TrimSpace(c.ReferencePath) == "" {
		return fmt.Errorf("reference_path is required")
	}
	if strings.TrimSpace(c.TotalMarker) == "" {
		return fmt.Errorf("total_marker must not be empty")
	}

	cols := map[string]string{
		"columns.name":             c.Columns.Name,
		"columns.replenish_reason": c.Columns.ReplenishReason,
		"columns.replenish_amount": c.Columns.ReplenishAmount,
		"columns.write_off_reason": c.Columns.WriteOffReason,
		"columns.write_off_amount": c.Columns.WriteOffAmount,
	}
	seen := make(map[string]string, len(cols))
	for field, title := range cols {
		title = strings.TrimSpace(title)
		if title == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		if other, dup := seen[title]; dup {
			return fmt.Errorf("%s and %s both name column %q", other, field, title)
		}
		seen[title] = field
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", c.Workers)
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("indent must be in [1, 8] (got %d)", c.Indent)
	}
	if c.ResultFile == "" || c.ErrorsFile == "" {
		return fmt.Errorf("result_file and errors_file are required")
	}
	if c.ResultFile == c.ErrorsFile {
		return fmt.Errorf("result_file and errors_file must differ")
	}
	return nil
}

// ParserOptions converts the config into walker settings.
func (c *Config) ParserOptions() ucoins.Options {
	return ucoins.Options{
		Columns: ucoins.Columns{
			Name:            c.Columns.Name,
			ReplenishReason: c.Columns.ReplenishReason,
			ReplenishAmount: c.Columns.ReplenishAmount,
			WriteOffReason:  c.Columns.WriteOffReason,
			WriteOffAmount:  c.Columns.WriteOffAmount,
		},
		TotalMarker: c.TotalMarker,
		Workers:     c.Workers,
	}
}

// IndexOptions converts the config into name index settings.
func (c *Config) IndexOptions() ucoins.IndexOptions {
	return ucoins.IndexOptions{
		Strict:           c.StrictReference,
		Sort:             !c.KeepReferenceOrder,
		RejectDuplicates: c.RejectDuplicates,
	}
}
