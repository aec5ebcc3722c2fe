// internal/config/env.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Edit holds editfa defaults read from the environment; flags override them.
type Edit struct {
	Wrap         int    `env:"EDITFA_WRAP" envDefault:"60"`
	ReportFormat string `env:"EDITFA_REPORT_FORMAT" envDefault:"tsv"`
	MetricsFile  string `env:"EDITFA_METRICS_FILE"`
	Delimiter    string `env:"EDITFA_DELIMITER"`
	Quiet        bool   `env:"EDITFA_QUIET"`
}

// PWM holds pwm2fastq defaults.
type PWM struct {
	Threads int `env:"PWM2FASTQ_THREADS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadEdit() (Edit, error) {
	var c Edit
	err := ParseEnv(&c)
	return c, err
}

func LoadPWM() (PWM, error) {
	var c PWM
	err := ParseEnv(&c)
	return c, err
}
