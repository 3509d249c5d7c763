package sdk

import (
	"encoding/json"
	"errors"
	"strings"

	ps "github.com/pinpt/go-common/v10/strings"
)

// DefaultBaseURI is the public LexOffice API base
const DefaultBaseURI = "https://api.lexoffice.io/v1/"

const (
	// ConfigKeyBaseURI is the config key for the API base uri
	ConfigKeyBaseURI = "base_uri"
	// ConfigKeyAPIToken is the config key for the API token
	ConfigKeyAPIToken = "api_token"
)

// ErrMissingToken is returned by Validate when no API token is configured
var ErrMissingToken = errors.New("missing required api_token")

type config struct {
	BaseURI  string `json:"base_uri"`
	APIToken string `json:"api_token"`
}

// Config is the client configuration
type Config struct {
	BaseURI  string `json:"base_uri"`
	APIToken string `json:"api_token"`

	kv map[string]interface{}
}

// Exists will return true if the key exists
func (c Config) Exists(key string) bool {
	_, ok := c.kv[key]
	return ok
}

// Get will return a value if found
func (c Config) Get(key string) (bool, interface{}) {
	val, ok := c.kv[key]
	return ok, val
}

// GetString will return a string coerced value for key
func (c Config) GetString(key string) (bool, string) {
	val, ok := c.kv[key]
	if !ok || val == "" {
		return false, ""
	}
	return ok, ps.Value(val)
}

// NewConfig will return a new Config
func NewConfig(kv map[string]interface{}) Config {
	if kv == nil {
		kv = make(map[string]interface{})
	}
	c := Config{kv: kv, BaseURI: DefaultBaseURI}
	c.apply()
	return c
}

func (c *Config) apply() {
	if ok, val := c.GetString(ConfigKeyBaseURI); ok {
		c.BaseURI = val
	}
	if ok, val := c.GetString(ConfigKeyAPIToken); ok {
		c.APIToken = val
	}
}

// Merge in new config
func (c *Config) Merge(kv map[string]interface{}) {
	if c.kv == nil {
		c.kv = make(map[string]interface{})
	}
	for k, v := range kv {
		c.kv[k] = v
	}
	c.apply()
}

// Parse detail from a buffer into the config
func (c *Config) Parse(buf []byte) error {
	var cfg config
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return err
	}
	kv := make(map[string]interface{})
	if err := json.Unmarshal(buf, &kv); err != nil {
		return err
	}
	c.Merge(kv)
	return nil
}

// Validate returns an error if the config cannot be used to reach the API
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURI) == "" {
		return errors.New("missing required base_uri")
	}
	if strings.TrimSpace(c.APIToken) == "" {
		return ErrMissingToken
	}
	return nil
}
