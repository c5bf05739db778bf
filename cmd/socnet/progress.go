// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/dustin/go-humanize"
)

// progressEvery is the tick interval between Debug progress lines.
const progressEvery = 100

// logProgress forwards engine progress to the logger: status lines at Info,
// every progressEvery-th tick at Debug.
type logProgress struct {
	logger *slog.Logger
}

func newLogProgress(l *slog.Logger) *logProgress { return &logProgress{logger: l} }

// OnProgress implements core.Progress.
func (p *logProgress) OnProgress(count int) {
	if count%progressEvery == 0 {
		p.logger.Debug("progress", slog.String("done", humanize.Comma(int64(count))))
	}
}

// OnStatus implements core.Progress.
func (p *logProgress) OnStatus(message string) {
	p.logger.Info(message)
}
