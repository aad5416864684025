package channel_webhook

import (
	"context"

	processChannelEvent "github.com/m04kA/SMC-HotelService/internal/usecase/process_channel_event"
)

type ProcessChannelEventUseCase interface {
	Execute(ctx context.Context, payload []byte, signature string) (*processChannelEvent.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
