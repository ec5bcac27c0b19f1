package out

import "context"

// ImageUploaderPort - загрузка изображения на внешний хостинг,
// возвращает публичный https-URL
type ImageUploaderPort interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
