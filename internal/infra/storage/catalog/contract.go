package catalog

import (
	"github.com/m04kA/SMC-CapsterBooking/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
