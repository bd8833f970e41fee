package registrar

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

// Config holds ucoins-register settings.
type Config struct {
	ReportPath string `yaml:"report_path" env:"UCOINS_REPORT_PATH" env-default:"result.json"`
	// ErrorsFile is written next to the report.
	ErrorsFile       string `yaml:"errors_file"        env:"UCOINS_REGISTER_ERRORS_FILE" env-default:"RegisterErrors.json"`
	PasswordHashCost int    `yaml:"password_hash_cost" env:"UCOINS_PASSWORD_HASH_COST"   env-default:"10"`
	Role             string `yaml:"role"               env:"UCOINS_CUSTOMER_ROLE"        env-default:"Employee"`
	DryRun           bool   `yaml:"dry_run"            env:"UCOINS_REGISTER_DRY_RUN"`
	Indent           int    `yaml:"indent"             env:"UCOINS_INDENT"               env-default:"4"`
}

// LoadConfig reads config from YAML file or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("ucoins-register config: %w", err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("ucoins-register config: file %s not found", path)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ucoins-register config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ReportPath) == "" {
		return fmt.Errorf("report_path is required")
	}
	if strings.TrimSpace(c.ErrorsFile) == "" {
		return fmt.Errorf("errors_file is required")
	}
	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.PasswordHashCost)
	}
	if !domain.Role(c.Role).IsValid() {
		return fmt.Errorf("role %q is not one of Administrator, Moderator, Employee", c.Role)
	}
	return nil
}
