// Package seed loads the static reference catalogues (guidance content,
// support resources, supplier directory) into empty collections. Seeding is
// idempotent: a collection that already holds documents is left untouched.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// Seeder writes reference data through the repository interfaces.
type Seeder struct {
	guidance  domain.GuidanceRepository
	support   domain.SupportResourceRepository
	suppliers domain.SupplierRepository
}

func New(guidance domain.GuidanceRepository, support domain.SupportResourceRepository, suppliers domain.SupplierRepository) *Seeder {
	return &Seeder{
		guidance:  guidance,
		support:   support,
		suppliers: suppliers,
	}
}

// Run seeds every empty reference collection. Collections that already
// contain data are skipped so restarts never duplicate documents.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedGuidance(ctx); err != nil {
		return fmt.Errorf("seed guidance: %w", err)
	}
	if err := s.seedSupport(ctx); err != nil {
		return fmt.Errorf("seed support resources: %w", err)
	}
	if err := s.seedSuppliers(ctx); err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}
	return nil
}

func (s *Seeder) seedGuidance(ctx context.Context) error {
	count, err := s.guidance.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("guidance data already present, skipping seed")
		return nil
	}

	items := GuidanceItems(time.Now().UTC())
	if err := s.guidance.InsertMany(ctx, items); err != nil {
		return err
	}
	log.Info().Int("count", len(items)).Msg("seeded guidance data")
	return nil
}

func (s *Seeder) seedSupport(ctx context.Context) error {
	count, err := s.support.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("support resources already present, skipping seed")
		return nil
	}

	resources := SupportResources()
	if err := s.support.InsertMany(ctx, resources); err != nil {
		return err
	}
	log.Info().Int("count", len(resources)).Msg("seeded support resources")
	return nil
}

func (s *Seeder) seedSuppliers(ctx context.Context) error {
	count, err := s.suppliers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("suppliers already present, skipping seed")
		return nil
	}

	roster := Suppliers()
	if err := s.suppliers.InsertMany(ctx, roster); err != nil {
		return err
	}
	log.Info().Int("count", len(roster)).Msg("seeded supplier directory")
	return nil
}
