package models

import (
	"github.com/intentd/intentd/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	TrainingStore TrainingStore
	Config        *config.Config
}
