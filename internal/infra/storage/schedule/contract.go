package schedule

import (
	"github.com/agendora/Agendora-BookingService/pkg/dbmetrics"
)

// Executor aliases shared with the other repositories
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
