package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/intentd/intentd/config"
	"github.com/intentd/intentd/pkg/models"
	"github.com/intentd/intentd/pkg/server"
	"github.com/intentd/intentd/pkg/store/memory"
	"github.com/intentd/intentd/pkg/store/mongo"
)

const (
	ErrStoreTypeNotSet = "store.type must be set"
	ErrMongoURINotSet  = "store.mongo.uri must be set"
	StoreTypeMongo     = "mongo"
	StoreTypeMemory    = "memory"
)

// run is the entrypoint for the intentd server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring intentd: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting intentd server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// initializes the training store
func NewAppState(cfg *config.Config) *models.AppState {
	appState := &models.AppState{
		Config: cfg,
	}

	initializeTrainingStore(appState)
	setupSignalHandler(appState)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		fmt.Printf("%+v\n", cfg)
		os.Exit(0)
	}
}

// initializeTrainingStore initializes the training store based on the config file / ENV
func initializeTrainingStore(appState *models.AppState) {
	storeConfig := appState.Config.Store
	if storeConfig.Type == "" {
		log.Fatal(ErrStoreTypeNotSet)
	}

	switch storeConfig.Type {
	case StoreTypeMongo:
		if storeConfig.Mongo.URI == "" {
			log.Fatal(ErrMongoURINotSet)
		}
		client, err := mongo.NewMongoConn(context.Background(), storeConfig.Mongo.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		appState.TrainingStore = mongo.NewTrainingStore(
			client,
			storeConfig.Mongo.Database,
			storeConfig.Mongo.Collection,
		)
	case StoreTypeMemory:
		log.Warn("Using the in-memory store; training data will not survive restarts")
		appState.TrainingStore = memory.NewTrainingStore()
	default:
		log.Fatal(
			fmt.Sprintf("store.type (%s) is not supported", storeConfig.Type),
		)
	}

	log.Info("Using training store: ", storeConfig.Type)
}

// setupSignalHandler sets up a signal handler to close the TrainingStore connection on termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		if err := appState.TrainingStore.Close(context.Background()); err != nil {
			log.Errorf("Error closing TrainingStore connection: %v", err)
		}
		os.Exit(0)
	}()
}
