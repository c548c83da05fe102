package report

import "github.com/school-data/deptreport/configs"

const (
	defaultInputPath = "compsci.json"
	defaultFormat    = configs.FormatAuto
)
