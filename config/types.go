package config

// NaPTANConfig points at a NaPTAN zip archive to import.
type NaPTANConfig struct {
	ArchivePath string `yaml:"archivePath" validate:"omitempty"`
}

// CalendarConfig points at a directory holding calendar.txt and,
// optionally, calendar_dates.txt.
type CalendarConfig struct {
	Dir string `yaml:"dir" validate:"omitempty"`
}

// LoggingConfig controls the root logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	NaPTAN   NaPTANConfig   `yaml:"naptan"`
	Calendar CalendarConfig `yaml:"calendar"`
	Logging  LoggingConfig  `yaml:"logging"`
}
