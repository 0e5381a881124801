package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is the rs-proxy base configuration
type Config struct {
	Server Server `yaml:"server"`
	Proxy  Proxy  `yaml:"proxy"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	LogPath       string `yaml:"logPath"`
}

type Proxy struct {
	Audience            string     `yaml:"audience"`
	DxApiBasePath       string     `yaml:"dxApiBasePath"`
	DxAuthBasePath      string     `yaml:"dxAuthBasePath"`
	AuthServerHost      string     `yaml:"authServerHost"`
	CatServerHost       string     `yaml:"catServerHost"`
	CatServerPort       int        `yaml:"catServerPort"`
	DxCatalogueBasePath string     `yaml:"dxCatalogueBasePath"`
	JwtIgnoreExpiry     bool       `yaml:"jwtIgnoreExpiry"`
	CacheTTLMinutes     int        `yaml:"cacheTTLMinutes"`
	CacheCapacity       int        `yaml:"cacheCapacity"`
	Upstreams           []Upstream `yaml:"upstreams"`
}

// Upstream is one downstream adapter the proxy forwards to
type Upstream struct {
	Name         string `yaml:"name"`
	Path         string `yaml:"path"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	PreservePath bool   `yaml:"preservePath"`
}

// Load loads rs-proxy config from given path
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
