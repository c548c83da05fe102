package report

import (
	"fmt"
	"os"

	"github.com/school-data/deptreport/configs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CMD = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the department report to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			cfg.InputPath = args[0]
		}

		return NewService(os.Stdout).Run(cfg)
	},
}

func loadConfig() (configs.Report, error) {
	// Re-unmarshal to include flag overrides.
	if err := viper.Unmarshal(&configs.Values); err != nil {
		return configs.Report{}, fmt.Errorf("failed to unmarshal config with flag overrides: %w", err)
	}

	cfg := configs.Values.Report
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return configs.Report{}, err
	}

	return cfg, nil
}

func applyDefaults(cfg *configs.Report) {
	if cfg.InputPath == "" {
		cfg.InputPath = defaultInputPath
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
}
