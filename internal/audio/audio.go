// Package audio получает аудио произношения слова у внешнего сервиса
// и сохраняет клип для вставки в поле карточки.
package audio

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// placeholderMD5 — контрольная сумма заглушки "the audio for this clip
// is currently not available", которую сервис отдает с кодом 200
// вместо честной ошибки.
const placeholderMD5 = "7e2c2f954ef6051373ba916f000168dc"

// maxClipSize ограничивает размер скачиваемого клипа.
const maxClipSize = 10 << 20

// SaveFunc сохраняет скачанный клип под именем name. Куда именно —
// решает вызывающая сторона (каталог медиафайлов, тестовый буфер).
type SaveFunc func(name string, data []byte) error

// Provider получает аудио произношения по слову и его чтению кане.
// Возвращаемое значение — готовое содержимое поля карточки
// ("[sound:имя.mp3]") либо пустая строка, если аудио нет.
type Provider interface {
	Fetch(ctx context.Context, word, kana string) (string, error)
}

// HTTPProvider — Provider поверх HTTP-сервиса произношений,
// принимающего пару query-параметров kanji и kana.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	save    SaveFunc

	// placeholderSum переопределяется только в тестах.
	placeholderSum string
}

// NewHTTPProvider создает провайдера. client может быть nil, тогда
// используется клиент с таймаутом по умолчанию.
func NewHTTPProvider(baseURL string, client *http.Client, save SaveFunc) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPProvider{
		baseURL:        baseURL,
		client:         client,
		save:           save,
		placeholderSum: placeholderMD5,
	}
}

// Fetch скачивает клип для пары (word, kana). Если сервис вернул
// заглушку "аудио недоступно", результат — пустая строка без ошибки:
// отсутствие аудио не отличается от отсутствия слова в словаре.
func (p *HTTPProvider) Fetch(ctx context.Context, word, kana string) (string, error) {
	if word == "" && kana == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("kanji", word)
	q.Set("kana", kana)
	reqURL := p.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("создание запроса аудио: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("запрос аудио: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("запрос аудио: сервис вернул статус %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxClipSize))
	if err != nil {
		return "", fmt.Errorf("чтение аудио: %w", err)
	}

	sum := md5.Sum(data)
	if hex.EncodeToString(sum[:]) == p.placeholderSum {
		return "", nil
	}

	name := clipName(word, kana)
	if err := p.save(name, data); err != nil {
		return "", fmt.Errorf("сохранение аудио %s: %w", name, err)
	}

	return "[sound:" + name + "]", nil
}

// clipName строит имя файла клипа по паре (word, kana).
func clipName(word, kana string) string {
	base := word
	if base == "" {
		base = kana
	} else if kana != "" && kana != word {
		base = word + "_" + kana
	}
	// Разделители путей в имени файла недопустимы.
	base = strings.NewReplacer("/", "_", "\\", "_").Replace(base)
	return base + ".mp3"
}
