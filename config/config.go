// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName = "config"
)

type Config struct {
	ResolverConfig ResolverConfig           `mapstructure:"resolver"`
	ChainConfigs   []map[string]interface{} `mapstructure:"chains"`
}

type ResolverConfig struct {
	Id       string `mapstructure:"id"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"logLevel" default:"info"`

	// Address is the EOA submitting transactions on both chains.
	Address string `mapstructure:"address"`

	SrcChainId uint64 `mapstructure:"srcChainId"`
	DstChainId uint64 `mapstructure:"dstChainId"`

	ApiAddr                   string `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`

	CoinmarketcapConfig CoinmarketcapConfig `mapstructure:"coinmarketcap"`
	PrivacyConfig       PrivacyConfig       `mapstructure:"privacy"`
}

type CoinmarketcapConfig struct {
	Url    string `mapstructure:"url" default:"https://pro-api.coinmarketcap.com"`
	ApiKey string `mapstructure:"apiKey"`
}

// PrivacyConfig are the commit-reveal timing knobs, in seconds.
type PrivacyConfig struct {
	MinRevealDelay    uint64 `mapstructure:"minRevealDelay" default:"60"`
	MaxRevealDelay    uint64 `mapstructure:"maxRevealDelay" default:"3600"`
	MinExecutionDelay uint64 `mapstructure:"minExecutionDelay" default:"30"`
	MaxExecutionDelay uint64 `mapstructure:"maxExecutionDelay" default:"7200"`
	CommitmentTTL     uint64 `mapstructure:"commitmentTTL" default:"86400"`
}

func (c PrivacyConfig) MinReveal() time.Duration  { return time.Duration(c.MinRevealDelay) * time.Second }
func (c PrivacyConfig) MaxReveal() time.Duration  { return time.Duration(c.MaxRevealDelay) * time.Second }
func (c PrivacyConfig) MinExecute() time.Duration { return time.Duration(c.MinExecutionDelay) * time.Second }
func (c PrivacyConfig) MaxExecute() time.Duration { return time.Duration(c.MaxExecutionDelay) * time.Second }
func (c PrivacyConfig) TTL() time.Duration        { return time.Duration(c.CommitmentTTL) * time.Second }

func (c *Config) Validate() error {
	if c.ResolverConfig.Address == "" {
		return fmt.Errorf("required field resolver.Address empty")
	}
	if c.ResolverConfig.SrcChainId == 0 || c.ResolverConfig.DstChainId == 0 {
		return fmt.Errorf("resolver.SrcChainId and resolver.DstChainId are required")
	}
	if len(c.ChainConfigs) == 0 {
		return fmt.Errorf("no chains configured")
	}
	return nil
}

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.json", "path to the configuration file, or 'env'")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))
}

// GetConfigFromFile reads a configuration file and merges it over base.
// Values present in the file win; base fills in what the file omits.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if base != nil {
		if err := mergo.Merge(config, base); err != nil {
			return nil, err
		}
	}
	if err := defaults.Set(&config.ResolverConfig); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// GetConfigFromENV assembles the configuration from RESOLVER_* environment
// variables, with the chain list passed as a JSON blob in RESOLVER_CHAINS.
func GetConfigFromENV(base *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RESOLVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := &Config{
		ResolverConfig: ResolverConfig{
			Id:         v.GetString("ID"),
			Env:        v.GetString("ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			Address:    v.GetString("ADDRESS"),
			SrcChainId: v.GetUint64("SRC_CHAIN_ID"),
			DstChainId: v.GetUint64("DST_CHAIN_ID"),
			ApiAddr:    v.GetString("API_ADDR"),
			HealthPort: uint16(v.GetUint32("HEALTH_PORT")),
			CoinmarketcapConfig: CoinmarketcapConfig{
				Url:    v.GetString("COINMARKETCAP_URL"),
				ApiKey: v.GetString("COINMARKETCAP_API_KEY"),
			},
		},
	}

	chainsJSON := v.GetString("CHAINS")
	if chainsJSON != "" {
		if err := json.Unmarshal([]byte(chainsJSON), &config.ChainConfigs); err != nil {
			return nil, fmt.Errorf("parsing RESOLVER_CHAINS: %w", err)
		}
	}

	if base != nil {
		if err := mergo.Merge(config, base); err != nil {
			return nil, err
		}
	}
	if err := defaults.Set(&config.ResolverConfig); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
