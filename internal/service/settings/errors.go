package settings

import "errors"

var (
	// ErrUnavailable возвращается, когда настройки недоступны:
	// кеш пуст и перезагрузка из хранилища не удалась
	ErrUnavailable = errors.New("settings.cache: settings unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса настроек
	ErrInternal = errors.New("settings.service: internal error")
)
