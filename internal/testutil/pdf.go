// Package testutil содержит генераторы тестовых файлов.
package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// PageHeight высота страниц, которые создает WritePDF
const PageHeight = 300

// minPaddingLines строки комментариев после заголовка, чтобы даже
// одностраничный файл был длиннее 512 байт
const minPaddingLines = 8

// PageWidth ширина i-й страницы (с 1). У каждой страницы своя ширина,
// по ней в тестах проверяется порядок страниц.
func PageWidth(page int) float64 {
	return float64(200 + 10*page)
}

// BuildPDF собирает минимальный корректный PDF с pages страницами
func BuildPDF(pages int, widthOffset int) []byte {
	var (
		buf     bytes.Buffer
		offsets []int
	)

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	// pdfcpu ищет startxref в последних 512 байтах и не читает файлы короче
	for i := 0; i < minPaddingLines; i++ {
		buf.WriteString("% pdfutils test fixture padding line .................................\n")
	}

	kids := ""
	for i := 0; i < pages; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))

	for i := 0; i < pages; i++ {
		width := PageWidth(i+1+widthOffset)
		content := fmt.Sprintf("0 0 m %d %d l S", int(width), PageHeight)
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << >> /Contents %d 0 R >>",
			int(width), PageHeight, 4+2*i))
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// WritePDF пишет PDF с pages страницами в dir/name и возвращает путь
func WritePDF(t testing.TB, dir, name string, pages int) string {
	t.Helper()
	return WritePDFWithOffset(t, dir, name, pages, 0)
}

// WritePDFWithOffset как WritePDF, но ширины страниц сдвинуты на offset,
// чтобы страницы разных файлов различались после склейки
func WritePDFWithOffset(t testing.TB, dir, name string, pages, offset int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildPDF(pages, offset), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WritePNG пишет однотонное изображение заданного размера
func WritePNG(t testing.TB, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}
