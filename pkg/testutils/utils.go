package testutils

import (
	"crypto/rand"
	"math/big"

	"github.com/intentd/intentd/config"
)

// NewTestConfig returns a config suitable for tests: memory store, English
// locale, NER enabled.
func NewTestConfig() *config.Config {
	return &config.Config{
		NLP: config.NLPConfig{
			Language: "en",
			ForceNER: true,
		},
		Store: config.StoreConfig{
			Type: "memory",
		},
		Server: config.ServerConfig{
			Port: 4000,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}
}

const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		bigInt, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		b[i] = charset[bigInt.Int64()]
	}
	return string(b)
}
