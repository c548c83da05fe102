package report

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/school-data/deptreport/configs"
	"github.com/school-data/deptreport/internal/infra/filesystem"
	"github.com/school-data/deptreport/internal/infra/filesystem/json"
	"github.com/school-data/deptreport/internal/infra/filesystem/yaml"
	"github.com/school-data/deptreport/internal/logger"
)

type Service struct {
	loader   *filesystem.Loader
	renderer *Renderer
	log      *slog.Logger
}

func NewService(out io.Writer) *Service {
	return &Service{
		loader:   filesystem.NewLoader(),
		renderer: NewRenderer(out),
		log:      logger.Named("report"),
	}
}

// Run loads the document at cfg.InputPath, decodes it and renders the
// report. Any returned error is one of the three fatal conditions;
// everything below the document's top level is handled tolerantly
// inside the renderer.
func (s *Service) Run(cfg configs.Report) error {
	data, err := s.loader.ReadAll(cfg.InputPath)
	if err != nil {
		return &ReadError{Path: cfg.InputPath, Err: err}
	}

	decoder, label := decoderFor(cfg)
	s.log.With("input", cfg.InputPath, "format", label).Debug("decoding department document")

	tree, err := decoder.DecodeTree(data)
	if err != nil {
		return &ParseError{Format: label, Err: err}
	}

	return s.renderer.Render(tree)
}

// decoderFor picks the decoder from the configured format. In auto
// mode a .yaml/.yml extension selects YAML, everything else is treated
// as JSON, matching the original data file.
func decoderFor(cfg configs.Report) (filesystem.Decoder, string) {
	format := cfg.Format
	if format == configs.FormatAuto {
		switch strings.ToLower(filepath.Ext(cfg.InputPath)) {
		case ".yaml", ".yml":
			format = configs.FormatYAML
		default:
			format = configs.FormatJSON
		}
	}

	if format == configs.FormatYAML {
		return yaml.NewReader(), "YAML"
	}
	return json.NewReader(), "JSON"
}
