// Package config loads application configuration from environment variables
// into tagged structs.
//
// Values are parsed with github.com/caarlos0/env/v11. Before the first load the
// package reads a .env file from the working directory with
// github.com/joho/godotenv; a missing file is not an error and variables that
// are already set are never overridden.
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// Nested structs are supported through the envPrefix tag. Use WithPrefix to
// namespace a whole struct and WithEnvFiles to read other dotenv files.
package config
