package report

import "github.com/spf13/viper"

func init() {
	declareStringFlag("input", "report.input", "", "Path of the department data file to render")
	declareStringFlag("format", "report.format", "", "Input format: auto, json or yaml")
}

func declareStringFlag(name, key, defaultValue, description string) {
	CMD.Flags().String(name, defaultValue, description)
	if err := viper.BindPFlag(key, CMD.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}
