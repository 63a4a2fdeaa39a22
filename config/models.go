package config

// Config holds the configuration of the application
// Use cmd.NewConfig to create a new instance
type Config struct {
	NLP    NLPConfig    `mapstructure:"nlp"`
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type StoreConfig struct {
	Type  string      `mapstructure:"type" validate:"required,oneof=mongo memory"`
	Mongo MongoConfig `mapstructure:"mongo"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri" validate:"omitempty,uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

// NLPConfig configures the classification engine. Language is the single
// locale the engine is trained and queried in.
type NLPConfig struct {
	Language string `mapstructure:"language" validate:"required"`
	ForceNER bool   `mapstructure:"force_ner"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
