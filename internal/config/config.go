package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	BankName      string `env:"BANK_NAME"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`
	SeedDemo      bool   `env:"SEED_DEMO"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.JWTUserSecret == "" {
		return nil, errors.New("jwt user secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.BankName, "n", "Syllabus Bank", "Bank display name")
	flag.StringVar(&flagConfig.JWTUserSecret, "s", "", "JWT signing secret")
	flag.BoolVar(&flagConfig.SeedDemo, "demo", false, "Seed demo users on start")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		BankName:      defaultIfBlank(envConfig.BankName, flagsConfig.BankName),
		JWTUserSecret: defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		SeedDemo:      envConfig.SeedDemo || flagsConfig.SeedDemo,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
