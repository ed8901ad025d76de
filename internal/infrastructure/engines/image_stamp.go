package engines

import (
	"fmt"
	"image"
	_ "image/jpeg" // регистрация декодера JPEG
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// PrepareImage уменьшает изображение так, чтобы ни одна сторона не превышала maxPx.
// Возвращает путь к файлу для наложения и функцию очистки временного файла.
func PrepareImage(path string, maxPx int) (string, func(), error) {
	noop := func() {}

	file, err := os.Open(path)
	if err != nil {
		return "", noop, fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", noop, fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if maxPx <= 0 || (bounds.Dx() <= maxPx && bounds.Dy() <= maxPx) {
		return path, noop, nil
	}

	// Thumbnail сохраняет пропорции
	scaled := resize.Thumbnail(uint(maxPx), uint(maxPx), img, resize.Lanczos3)

	tmpFile, err := os.CreateTemp("", "pdfutils-stamp-*.png")
	if err != nil {
		return "", noop, fmt.Errorf("create temporary stamp: %w", err)
	}
	cleanup := func() { os.Remove(tmpFile.Name()) }

	encoder := &png.Encoder{CompressionLevel: png.BestCompression}
	err = encoder.Encode(tmpFile, scaled)
	if closeErr := tmpFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", noop, fmt.Errorf("encode stamp PNG: %w", err)
	}

	return tmpFile.Name(), cleanup, nil
}
