package dto

// Фотографии дня; изображения кодируются в base64 (стандартное поведение encoding/json для []byte).
type Photos struct {
	Photos         [][]byte `json:"photos"`
	ThumbnailIndex *int     `json:"thumbnail_index,omitempty"`
	Count          int      `json:"count"`
}

// Замена всех фотографий дня. Пустой список очищает их.
type PhotosRequest struct {
	Photos         [][]byte `json:"photos"`
	ThumbnailIndex *int     `json:"thumbnail_index,omitempty"`
}

// Пресайн на загрузку фотографии дня в архив.
type PhotoPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type PhotoPresignResponse struct {
	UploadURL      string            `json:"upload_url"`
	PhotoKey       string            `json:"photo_key"`
	ExpiresSeconds uint32            `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_headers"`
}

type PhotoConfirmRequest struct {
	PhotoKey string `json:"photo_key"`
}
