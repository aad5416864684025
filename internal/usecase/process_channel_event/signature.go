package process_channel_event

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// verifySignature проверяет HMAC-SHA256 подпись сырого тела уведомления
//
// Подпись сравнивается за константное время (hmac.Equal), чтобы побайтовое
// сравнение с ранним выходом не давало атакующему тайминговый оракул.
// Подпись ожидается в hex, опционально с префиксом "sha256=".
func verifySignature(payload []byte, signature, secret string) error {
	if secret == "" {
		return ErrMissingSecret
	}
	if signature == "" {
		return ErrMissingSignature
	}

	signature = strings.TrimPrefix(signature, "sha256=")

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	if !hmac.Equal(provided, expected) {
		return ErrInvalidSignature
	}

	return nil
}
