// Package config loads the application configuration from YAML with
// struct-tag defaults applied beforehand.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

// Config represents the complete configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	API     APIConfig     `yaml:"api"`
	Content ContentConfig `yaml:"content"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host" default:"0.0.0.0"`
	Port string `yaml:"port" default:"5002"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	// Backend is one of: memory, file, sqlite, s3.
	Backend string       `yaml:"backend" default:"file"`
	File    FileConfig   `yaml:"file"`
	SQLite  SQLiteConfig `yaml:"sqlite"`
	S3      S3Config     `yaml:"s3"`
}

type FileConfig struct {
	Path string `yaml:"path" default:"data/blog_storage.json"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" default:"data/blog.db"`
}

// S3Config holds everything except the credentials, which come from the
// environment (S3_ACCESS_KEY_ID / S3_SECRET_ACCESS_KEY, see .env).
type S3Config struct {
	Bucket   string `yaml:"bucket" default:""`
	Key      string `yaml:"key" default:"blog_storage.json"`
	Region   string `yaml:"region" default:"auto"`
	Endpoint string `yaml:"endpoint" default:""`
}

type APIConfig struct {
	PageSize  int             `yaml:"page_size" default:"10"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig mirrors the limits of the original service: a global
// per-IP budget plus a tighter budget on post creation.
type RateLimitConfig struct {
	Requests        int `yaml:"requests" default:"100"`
	WindowMinutes   int `yaml:"window_minutes" default:"60"`
	CreatePerMinute int `yaml:"create_per_minute" default:"10"`
}

type ContentConfig struct {
	Seed bool `yaml:"seed" default:"true"`
}

type LoggingConfig struct {
	Level string `yaml:"level" default:"info"`
}

var AppConfig *Config

// LoadConfig reads the YAML file at path into AppConfig. A missing file is
// not an error; the defaults apply.
func LoadConfig(path string) error {
	config := &Config{}

	applyDefaults(config)

	data, err := os.ReadFile(path)
	if err != nil {
		configLogger.Info().Str("path", path).Msg("Config file not found, using defaults")
		AppConfig = config
		return nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	AppConfig = config
	return nil
}

func ApplyDefaults(config interface{}) {
	applyDefaults(config)
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		// Recursively apply defaults to nested structs
		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Float64:
			if val, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				field.SetFloat(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
