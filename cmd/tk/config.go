package main

import (
	"os"

	"task-tracker/internal/config"
	"task-tracker/internal/repository"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates task stores based on environment
type StoreFactory struct {
	env Environment
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment) *StoreFactory {
	return &StoreFactory{env: env}
}

// CreateStore creates a task store for the current environment
func (sf *StoreFactory) CreateStore(cfg *config.Config) (repository.TaskStore, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore(cfg)
	case Testing:
		return config.CreateTestStore(cfg.Storage.Backend)
	default:
		return config.CreateStore(cfg)
	}
}

// createDevelopmentStore keeps data in the working directory unless a
// directory was configured explicitly.
func (sf *StoreFactory) createDevelopmentStore(cfg *config.Config) (repository.TaskStore, error) {
	devCfg := *cfg
	if os.Getenv("TK_DATA_DIR") == "" {
		devCfg.Storage.Dir = "."
	}
	return config.CreateStore(&devCfg)
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("TK_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
