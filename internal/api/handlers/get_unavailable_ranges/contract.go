package get_unavailable_ranges

import (
	"context"

	getUnavailableRanges "github.com/m04kA/JWL-RentalService/internal/usecase/get_unavailable_ranges"
)

type GetUnavailableRangesUseCase interface {
	Execute(ctx context.Context, req *getUnavailableRanges.Request) (*getUnavailableRanges.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
