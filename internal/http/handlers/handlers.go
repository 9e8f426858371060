package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-lifelog/internal/http/errors"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/service"
)

// maxBodyBytes — предел тела JSON-запроса (фотографии приходят в base64).
const maxBodyBytes = 64 << 20

// Handlers агрегирует зависимости REST-эндпойнтов.
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeImage отдаёт изображение как есть; тип определяется по содержимому.
func writeImage(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("%w: %v", apierrors.ErrBadRequest, err)
	}

	return nil
}

// dayParam разбирает {date} из пути.
func dayParam(r *http.Request) (time.Time, error) {
	d, err := models.ParseDay(chi.URLParam(r, "date"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date: %v", apierrors.ErrBadRequest, err)
	}

	return d, nil
}

// indexParam разбирает {index} из пути.
func indexParam(r *http.Request) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, fmt.Errorf("%w: index: %v", apierrors.ErrBadRequest, err)
	}

	return i, nil
}

// queryDay разбирает необязательную дату из query; пустое значение — nil.
func queryDay(r *http.Request, key string) (*time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}

	d, err := models.ParseDay(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apierrors.ErrBadRequest, key, err)
	}

	return &d, nil
}

// queryRef — необязательная опорная дата; нулевое значение сервис трактует как «сегодня».
func queryRef(r *http.Request) (time.Time, error) {
	d, err := queryDay(r, "ref")
	if err != nil || d == nil {
		return time.Time{}, err
	}

	return *d, nil
}

// queryInt разбирает необязательное целое; пустое значение — def.
func queryInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apierrors.ErrBadRequest, key, err)
	}

	return n, nil
}
