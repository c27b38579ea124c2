package service

import (
	"fmt"
	"os"

	"talentsync/config"
	"talentsync/pkg/scheduling"

	"go.uber.org/zap"
)

// NewTaxonomy 讀取 SCHEDULE__TAXONOMY_FILE；未設定時使用內建班別與職位
func NewTaxonomy(logger *zap.Logger, config *config.Configuration) (*scheduling.Taxonomy, error) {
	path := config.Schedule.TaxonomyFile
	if path == "" {
		logger.Info("using built-in shift taxonomy")
		return scheduling.DefaultTaxonomy(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy file: %w", err)
	}
	defer f.Close()

	tax, err := scheduling.LoadTaxonomy(f)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded shift taxonomy",
		zap.String("file", path),
		zap.Int("shifts", len(tax.Shifts())),
		zap.Strings("positions", tax.PositionNames()),
	)
	return tax, nil
}
