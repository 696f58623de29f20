package config

// Значения по умолчанию. Используются при отсутствии файла конфигурации
// и для незаполненных секций.
const (
	DefaultSnapshotPath  = "assistant.json"
	DefaultBirthdayDays  = 7
	DefaultTopTagsLimit  = 3
	DefaultLoggerEnv     = "development"
	DefaultLoggerLevel   = "info"
	DefaultLoggerOutPath = "assistant.log"
)

// ConfigLogger настройки логирования.
type ConfigLogger struct {
	Env   string `mapstructure:"env"`
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// ConfigStorage настройки хранилища снимков.
type ConfigStorage struct {
	Path string `mapstructure:"path"`
}

// ConfigBirthdays настройки выборки ближайших дней рождения.
type ConfigBirthdays struct {
	DaysAhead int `mapstructure:"days_ahead"`
}

// ConfigStats настройки статистики.
type ConfigStats struct {
	TopTags int `mapstructure:"top_tags"`
}

// Config основная структура конфигурации.
type Config struct {
	Logger    *ConfigLogger    `mapstructure:"logger"`
	Storage   *ConfigStorage   `mapstructure:"storage"`
	Birthdays *ConfigBirthdays `mapstructure:"birthdays"`
	Stats     *ConfigStats     `mapstructure:"stats"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

// fillDefaults заполняет пропущенные секции и поля значениями
// по умолчанию.
func (c *Config) fillDefaults() {
	if c.Logger == nil {
		c.Logger = &ConfigLogger{}
	}
	if c.Logger.Env == "" {
		c.Logger.Env = DefaultLoggerEnv
	}
	if c.Logger.Level == "" {
		c.Logger.Level = DefaultLoggerLevel
	}
	if c.Logger.Path == "" {
		c.Logger.Path = DefaultLoggerOutPath
	}
	if c.Storage == nil {
		c.Storage = &ConfigStorage{}
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultSnapshotPath
	}
	if c.Birthdays == nil {
		c.Birthdays = &ConfigBirthdays{}
	}
	if c.Birthdays.DaysAhead <= 0 {
		c.Birthdays.DaysAhead = DefaultBirthdayDays
	}
	if c.Stats == nil {
		c.Stats = &ConfigStats{}
	}
	if c.Stats.TopTags <= 0 {
		c.Stats.TopTags = DefaultTopTagsLimit
	}
}
