package mongo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"

	"github.com/intentd/intentd/pkg/models"
)

const fixtureFileName = "training_data.yaml"

// GenerateFixtureData writes a YAML file of fake training records to
// outputDir. Each record gets a generated intent name, 2-5 utterances, and
// 1-3 answers.
func GenerateFixtureData(fixtureCount int, outputDir string) error {
	fakerGlobal := gofakeit.NewUnlocked(0)
	gofakeit.SetGlobalFaker(fakerGlobal)

	records := make([]models.TrainingRecord, fixtureCount)
	for i := 0; i < fixtureCount; i++ {
		utteranceCount := gofakeit.Number(2, 5)
		utterances := make([]string, utteranceCount)
		for j := 0; j < utteranceCount; j++ {
			utterances[j] = gofakeit.Question()
		}

		answerCount := gofakeit.Number(1, 3)
		answers := make([]string, answerCount)
		for j := 0; j < answerCount; j++ {
			answers[j] = gofakeit.Sentence(gofakeit.Number(4, 10))
		}

		records[i] = models.TrainingRecord{
			Intent:     strings.ToLower(gofakeit.Verb() + "_" + gofakeit.Noun()),
			Utterances: utterances,
			Answers:    answers,
		}
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal fixtures: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create fixture dir: %w", err)
	}
	path := filepath.Join(outputDir, fixtureFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write fixtures: %w", err)
	}
	return nil
}

// LoadFixtures reads a fixture YAML file and creates every record through
// the given store.
func LoadFixtures(ctx context.Context, trainingStore models.TrainingStore, fixturePath string) error {
	path := fixturePath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, fixtureFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixtures: %w", err)
	}

	var records []models.TrainingRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal fixtures: %w", err)
	}

	for i := range records {
		if _, err := trainingStore.Create(ctx, &records[i]); err != nil {
			return fmt.Errorf("failed to load fixture %d: %w", i, err)
		}
	}
	log.Infof("Loaded %d training record fixtures", len(records))
	return nil
}
