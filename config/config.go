package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		Database  `yaml:"database"`
		Server    `yaml:"server"`
		Dashboard `yaml:"dashboard"`
		Report    `yaml:"report"`
	}
	Database struct {
		Type         string `yaml:"type"` // "postgres" or "mysql"
		Host         string `yaml:"host"`
		Port         string `yaml:"port"`
		Username     string `yaml:"username"`
		Password     string `yaml:"password"`
		DatabaseName string `yaml:"database_name"`
		ConnPoolSize int    `yaml:"connection_pool_size"`
	}
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	}
	Dashboard struct {
		// how many devices the board shows at most, 0 falls back to 200
		DeviceLimit int `yaml:"device_limit"`
	}
	Report struct {
		OutputDirectoryAbsolutePath string `yaml:"output_directory_absolute_path"`
	}
)

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(filepath)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
