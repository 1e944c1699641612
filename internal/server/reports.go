package server

import (
	"log/slog"

	"github.com/preston-bernstein/venue-tv-service/internal/app/assignments"
	"github.com/preston-bernstein/venue-tv-service/internal/config"
	"github.com/preston-bernstein/venue-tv-service/internal/reports"
)

// reportComponents is empty when reports are disabled.
type reportComponents struct {
	writer *reports.Writer
	store  reports.Store
	pruner *reports.Pruner
}

func buildReports(cfg config.Config, logger *slog.Logger) (reportComponents, error) {
	if !cfg.Reports.Enabled {
		return reportComponents{}, nil
	}
	writer := reports.NewWriter(cfg.Reports.Dir, cfg.Reports.RetentionDays)
	pruner, err := reports.NewPruner(writer, cfg.Reports.PruneHourUTC, logger)
	if err != nil {
		return reportComponents{}, err
	}
	return reportComponents{
		writer: writer,
		store:  reports.NewFSStore(cfg.Reports.Dir),
		pruner: pruner,
	}, nil
}

// cycleWriter returns a nil interface when reports are disabled.
func (c reportComponents) cycleWriter() assignments.CycleWriter {
	if c.writer == nil {
		return nil
	}
	return c.writer
}
