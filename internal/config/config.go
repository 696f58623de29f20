package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Регулярное выражение для подстановок вида ${VAR:-default}.
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnv подставляет переменные окружения в значение конфигурации.
// Поддерживается формат ${VAR:-default}: если переменная не установлена,
// используется значение по умолчанию.
func expandEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		if value := os.Getenv(groups[1]); value != "" {
			return value
		}
		if len(groups) > 2 {
			return groups[2]
		}
		return ""
	})
}

// Init читает конфигурационный файл и возвращает экземпляр конфигурации.
// Тип конфигурации задается параметром типа.
func Init[C any](configFile string) (*C, error) {
	v := viper.New()
	ext := strings.TrimLeft(filepath.Ext(configFile), ".")

	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Подставляем переменные окружения в строковые значения
	for _, key := range v.AllKeys() {
		value := v.GetString(key)
		if value == "" {
			continue
		}
		if expanded := expandEnv(value); expanded != value {
			v.Set(key, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}
	return cfg, nil
}

// Load читает конфигурацию приложения из файла. Отсутствующий файл
// не считается ошибкой: возвращается конфигурация по умолчанию,
// чтобы первый запуск не требовал никакой подготовки.
func Load(configFile string) (*Config, error) {
	cfg, err := Init[Config](configFile)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) || errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return Default(), nil
		}
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}
