package http

import (
	"bursary-portal/internal/infrastructure/logger"

	"go.uber.org/zap"
)

func orNop(log *zap.Logger) *zap.Logger { return logger.OrNop(log) }
