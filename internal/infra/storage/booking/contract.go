package booking

import (
	"github.com/agendora/Agendora-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works against
// *sql.DB, *dbmetrics.DB and any transaction carried in context.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
