package main

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"

	"github.com/hashsign/hashsign/x/registrar"
)

type Config struct {
	Server Server `yaml:"server"`
	Blob   Blob   `yaml:"blob"`
	Ledger Ledger `yaml:"ledger"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

// Blob selects which content store backs the registrar. Backend is either
// "minio" or "pinning".
type Blob struct {
	Backend string                  `yaml:"backend"`
	Minio   registrar.MinioConfig   `yaml:"minio"`
	Pinning registrar.PinningConfig `yaml:"pinning"`
}

// Ledger selects how transitions reach the document store engine. Mode is
// "embedded" to run the engine in-process against the local database, or
// "remote" to call another node's ledger API at Endpoint.
type Ledger struct {
	Mode     string `yaml:"mode"`
	Endpoint string `yaml:"endpoint"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	return nil
}
