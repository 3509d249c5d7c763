package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pinpt/go-common/v10/fileutil"
	pos "github.com/pinpt/go-common/v10/os"
	"github.com/pinpt/lexoffice/sdk"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

const (
	envBaseURI  = "LEXOFFICE_BASE_URI"
	envAPIToken = "LEXOFFICE_API_TOKEN"
)

type fileConfig struct {
	BaseURI  string `yaml:"base_uri,omitempty" survey:"base_uri"`
	APIToken string `yaml:"api_token" survey:"api_token"`
}

func defaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lexoffice.yaml"), nil
}

// a missing file is an empty config
func loadFileConfig(fn string) (*fileConfig, error) {
	var c fileConfig
	if !fileutil.FileExists(fn) {
		return &c, nil
	}
	buf, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", fn, err)
	}
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", fn, err)
	}
	return &c, nil
}

func (c *fileConfig) save(fn string) error {
	buf, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fn, buf, 0600)
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default is $HOME/.lexoffice.yaml)")
	flags.String("env-file", "", "a dotenv file read before the environment")
	flags.String("base-uri", "", "the api base uri, overrides "+envBaseURI)
	flags.String("token", "", "the api token, overrides "+envAPIToken)
}

func configFilename(flags *pflag.FlagSet) (string, error) {
	fn, _ := flags.GetString("config")
	if fn != "" {
		return fn, nil
	}
	return defaultConfigFile()
}

// dotenv values replace file values but not the process environment
func applyEnvFile(fc *fileConfig, fn string) error {
	if fn == "" {
		return nil
	}
	kv, err := godotenv.Read(fn)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", fn, err)
	}
	if v := kv[envBaseURI]; v != "" {
		fc.BaseURI = v
	}
	if v := kv[envAPIToken]; v != "" {
		fc.APIToken = v
	}
	return nil
}

// resolveConfig layers the config file, the env file, the environment and then flags
func resolveConfig(flags *pflag.FlagSet) (sdk.Config, error) {
	fn, err := configFilename(flags)
	if err != nil {
		return sdk.Config{}, err
	}
	fc, err := loadFileConfig(fn)
	if err != nil {
		return sdk.Config{}, err
	}
	envfn, _ := flags.GetString("env-file")
	if err := applyEnvFile(fc, envfn); err != nil {
		return sdk.Config{}, err
	}
	baseURI := pos.Getenv(envBaseURI, fc.BaseURI)
	token := pos.Getenv(envAPIToken, fc.APIToken)
	if flags.Changed("base-uri") {
		baseURI, _ = flags.GetString("base-uri")
	}
	if flags.Changed("token") {
		token, _ = flags.GetString("token")
	}
	return sdk.NewConfig(map[string]interface{}{
		sdk.ConfigKeyBaseURI:  baseURI,
		sdk.ConfigKeyAPIToken: token,
	}), nil
}
