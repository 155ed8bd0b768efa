package config

import "path/filepath"

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendS3       = "s3"
)

type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data-dir"`
}

func (s *StorageConfig) Kind() string {
	return s.Backend
}

func (s *StorageConfig) Dir() string {
	return s.DataDir
}

func (s *StorageConfig) KeysDir() string {
	return filepath.Join(s.DataDir, "keys")
}
