package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/intakekit/intake/applications/server/domain"
)

const (
	BackendMemory = "memory"
	BackendS3     = "s3"
)

type Server struct {
	API     Api     `yaml:"api"`
	Upload  Upload  `yaml:"upload"`
	Storage Storage `yaml:"storage"`
}

type Api struct {
	HTTPAddr string `yaml:"http_addr"`
}

type Upload struct {
	MaxFileSize FileSize `yaml:"max_file_size"`
}

type FileSize struct {
	Value int64  `yaml:"value"`
	Unit  string `yaml:"unit"`
}

type Storage struct {
	Backend string `yaml:"backend"`
	S3      S3     `yaml:"s3"`
}

type S3 struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

func Parse(path string) (Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Server{}, fmt.Errorf("can't read config file: %w", err)
	}

	var cfg Server
	if err = yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Server{}, fmt.Errorf("can't unmarshal config: %w", err)
	}

	return cfg, nil
}

func (s Server) Validate() error {
	if s.API.HTTPAddr == "" {
		return fmt.Errorf("api.http_addr must be set")
	}

	if s.Upload.MaxFileSize.Value <= 0 {
		return fmt.Errorf("upload.max_file_size.value must be positive")
	}
	if _, err := domain.ParseSizeUnit(s.Upload.MaxFileSize.Unit); err != nil {
		return fmt.Errorf("upload.max_file_size.unit: %w", err)
	}

	switch s.Storage.Backend {
	case BackendMemory:
	case BackendS3:
		if s.Storage.S3.Region == "" || s.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.region and storage.s3.bucket must be set for the s3 backend")
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q", BackendMemory, BackendS3)
	}

	return nil
}

// Limit converts the configured size into the domain value object. Call
// after Validate; an unknown unit is reported as an error anyway.
func (u Upload) Limit() (domain.FileSizeLimit, error) {
	unit, err := domain.ParseSizeUnit(u.MaxFileSize.Unit)
	if err != nil {
		return domain.FileSizeLimit{}, err
	}

	return domain.FileSizeLimit{Value: u.MaxFileSize.Value, Unit: unit}, nil
}
