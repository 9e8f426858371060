// photos упаковывает фотографии дня и индекс миниатюры в одно бинарное значение.
//
// Формат хранения:
//   - нет фотографий — пустое значение (nil);
//   - одна фотография без миниатюры — «сырые» байты изображения (формат ранних записей);
//   - иначе — JSON-конверт {"photos": [base64, ...], "thumbnailIndex": n}.
//
// Декодирование сначала пробует конверт, затем трактует значение как одно сырое изображение.
// Ошибок при декодировании нет: битые данные деградируют до сырого изображения или пустого списка.
package photos

import (
	"encoding/json"
	"fmt"
)

// Storage — вид сохранённого значения.
type Storage int8

const (
	// StorageEmpty — значения нет.
	StorageEmpty Storage = iota
	// StorageRaw — одно изображение без конверта.
	StorageRaw
	// StorageEnvelope — JSON-конверт со списком и индексом миниатюры.
	StorageEnvelope
)

func (s Storage) String() string {
	switch s {
	case StorageRaw:
		return "raw"
	case StorageEnvelope:
		return "envelope"
	default:
		return "empty"
	}
}

// envelope — структурированный формат. []byte кодируется encoding/json в base64.
type envelope struct {
	Photos         [][]byte `json:"photos"`
	ThumbnailIndex *int     `json:"thumbnailIndex,omitempty"`
}

// Payload — раскодированные фотографии дня.
// ThumbnailIndex == nil означает «миниатюра не выбрана».
type Payload struct {
	Photos         [][]byte
	ThumbnailIndex *int
}

// Encode упаковывает фотографии в одно значение.
// Индекс миниатюры вне диапазона отбрасывается.
func Encode(photos [][]byte, thumbnail *int) ([]byte, error) {
	const op = "photos/Encode"

	if len(photos) == 0 {
		return nil, nil
	}

	thumbnail = validIndex(thumbnail, len(photos))

	if len(photos) == 1 && thumbnail == nil {
		out := make([]byte, len(photos[0]))
		copy(out, photos[0])
		return out, nil
	}

	data, err := json.Marshal(envelope{Photos: photos, ThumbnailIndex: thumbnail})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// Decode раскодирует значение, записанное Encode или ранними версиями схемы.
func Decode(data []byte) Payload {
	if len(data) == 0 {
		return Payload{}
	}

	if env, ok := decodeEnvelope(data); ok {
		return Payload{
			Photos:         env.Photos,
			ThumbnailIndex: validIndex(env.ThumbnailIndex, len(env.Photos)),
		}
	}

	raw := make([]byte, len(data))
	copy(raw, data)

	return Payload{Photos: [][]byte{raw}}
}

// Classify сообщает, в каком виде хранится значение.
func Classify(data []byte) Storage {
	if len(data) == 0 {
		return StorageEmpty
	}

	if _, ok := decodeEnvelope(data); ok {
		return StorageEnvelope
	}

	return StorageRaw
}

// decodeEnvelope возвращает конверт, только если он разобрался и содержит фотографии.
func decodeEnvelope(data []byte) (envelope, bool) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}, false
	}

	if len(env.Photos) == 0 {
		return envelope{}, false
	}

	return env, true
}

// Encode упаковывает payload.
func (p Payload) Encode() ([]byte, error) {
	return Encode(p.Photos, p.ThumbnailIndex)
}

// Len возвращает число фотографий.
func (p Payload) Len() int {
	return len(p.Photos)
}

// Thumbnail возвращает изображение для ячейки календаря:
// выбранную миниатюру, иначе первую фотографию, иначе nil.
// Индекс вне диапазона считается отсутствующим.
func (p Payload) Thumbnail() []byte {
	if len(p.Photos) == 0 {
		return nil
	}

	if i := validIndex(p.ThumbnailIndex, len(p.Photos)); i != nil {
		return p.Photos[*i]
	}

	return p.Photos[0]
}

// Append добавляет фотографию в конец списка.
func (p Payload) Append(photo []byte) Payload {
	photos := make([][]byte, 0, len(p.Photos)+1)
	photos = append(photos, p.Photos...)
	photos = append(photos, photo)

	return Payload{Photos: photos, ThumbnailIndex: p.ThumbnailIndex}
}

// RemoveAt удаляет фотографию по индексу. Индекс миниатюры сдвигается,
// а если удалена сама миниатюра — сбрасывается. Неверный индекс — no-op.
func (p Payload) RemoveAt(i int) Payload {
	if i < 0 || i >= len(p.Photos) {
		return p
	}

	photos := make([][]byte, 0, len(p.Photos)-1)
	photos = append(photos, p.Photos[:i]...)
	photos = append(photos, p.Photos[i+1:]...)

	var thumb *int
	if p.ThumbnailIndex != nil {
		switch t := *p.ThumbnailIndex; {
		case t < i:
			thumb = &t
		case t > i:
			t--
			thumb = &t
		}
	}

	return Payload{Photos: photos, ThumbnailIndex: validIndex(thumb, len(photos))}
}

// SetThumbnail выбирает миниатюру; nil или неверный индекс сбрасывают выбор.
func (p Payload) SetThumbnail(i *int) Payload {
	return Payload{Photos: p.Photos, ThumbnailIndex: validIndex(i, len(p.Photos))}
}

func validIndex(i *int, n int) *int {
	if i == nil || *i < 0 || *i >= n {
		return nil
	}

	v := *i
	return &v
}
