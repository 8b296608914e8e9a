package cli

import (
	"hydro-command/internal/pkg/errs"
)

var (
	errDeviceRequired = errs.New("--device is required")
	errTokenRequired  = errs.New("--token or HYDRO_TOKEN is required")
	errAPIKeyRequired = errs.New("--api-key or HYDRO_API_KEY is required")
	errBadParam       = errs.New("parameters must be key=value")
)
