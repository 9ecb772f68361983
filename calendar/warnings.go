package calendar

import (
	"strings"

	"github.com/rs/zerolog"
)

// Warning type constants
const (
	WarningServiceNotFound = "service_not_found"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects soft-skipped records during an import and logs
// a consolidated summary per warning type once the import step finishes.
type WarningAggregator struct {
	logger   zerolog.Logger
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator(logger zerolog.Logger) *WarningAggregator {
	return &WarningAggregator{
		logger:   logger,
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID and logs the skipped
// record itself at warn level.
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}

	w.logger.Warn().Str("id", exampleID).Msg(w.describe(warningType))
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll() {
	for warningType, info := range w.warnings {
		w.logger.Warn().
			Int("occurrences", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msgf("%s, records dropped", w.describe(warningType))
	}
}

func (w *WarningAggregator) describe(warningType string) string {
	switch warningType {
	case WarningServiceNotFound:
		return "calendar exception references unknown service_id"
	default:
		return "unknown issue"
	}
}
