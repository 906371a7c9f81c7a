package contentapi

import "strings"

// AbsoluteImageURL приводит image-поле к одному из допустимых видов:
// пустая строка остаётся пустой, абсолютный URL не трогается,
// относительный путь пристыковывается к базе статики.
func AbsoluteImageURL(base, image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(image, "/")
}
