// Package migration applies the additive schema steps in order, each exactly once.
package migration

import (
	"errors"
	"fmt"

	"roadmap-be/internal/model"

	"gorm.io/gorm"
)

type Step struct {
	ID    string
	Apply func(tx *gorm.DB) error
}

// Steps is append-only. Never edit a step that has shipped.
var Steps = []Step{
	{
		ID: "0001_initial",
		Apply: func(tx *gorm.DB) error {
			// Parents first so the has-many constraints are known when children are created.
			return tx.AutoMigrate(&model.Roadmap{}, &model.Topic{}, &model.Subtopic{})
		},
	},
	{
		ID: "0002_chatmessage",
		Apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&model.Subtopic{}, &model.ChatMessage{})
		},
	},
}

// Run applies pending steps and returns the IDs it applied.
func Run(db *gorm.DB) ([]string, error) {
	return RunSteps(db, Steps)
}

func RunSteps(db *gorm.DB, steps []Step) ([]string, error) {
	if err := db.AutoMigrate(&model.SchemaMigration{}); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := make([]string, 0, len(steps))
	for _, step := range steps {
		var existing model.SchemaMigration
		err := db.Where("id = ?", step.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return applied, fmt.Errorf("check migration %s: %w", step.ID, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := step.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&model.SchemaMigration{Id: step.ID}).Error
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", step.ID, err)
		}
		applied = append(applied, step.ID)
	}
	return applied, nil
}
