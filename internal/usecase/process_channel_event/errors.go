package process_channel_event

import "errors"

var (
	// ErrMissingSecret возвращается, когда секрет канала не сконфигурирован
	// Без секрета подлинность уведомления проверить невозможно
	ErrMissingSecret = errors.New("process_channel_event: webhook secret is not configured")

	// ErrMissingSignature возвращается, когда заголовок подписи отсутствует
	ErrMissingSignature = errors.New("process_channel_event: signature header is missing")

	// ErrInvalidSignature возвращается при несовпадении HMAC подписи
	ErrInvalidSignature = errors.New("process_channel_event: invalid signature")
)
