package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrDecode = errors.New("failed to decode image")

// Result - готовые к сохранению байты изображения
type Result struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
	Resized     bool
}

type Processor struct {
	quality   int // JPEG quality (1-100)
	maxWidth  int
	maxHeight int
}

func NewProcessor(quality, maxWidth, maxHeight int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxWidth <= 0 {
		maxWidth = 1600
	}
	if maxHeight <= 0 {
		maxHeight = 1600
	}
	return &Processor{
		quality:   quality,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}
}

// Process проверяет что данные декодируются как изображение и уменьшает его,
// если оно больше maxWidth x maxHeight. Изображения в пределах лимита
// возвращаются байт в байт. Уменьшенный JPEG остается JPEG, остальное кодируется в PNG.
func (p *Processor) Process(data []byte, contentType, ext string) (*Result, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= p.maxWidth && bounds.Dy() <= p.maxHeight {
		return &Result{
			Data:        data,
			ContentType: contentType,
			Ext:         ext,
			Width:       bounds.Dx(),
			Height:      bounds.Dy(),
		}, nil
	}

	resized := p.resize(img, p.maxWidth, p.maxHeight)

	var buf bytes.Buffer
	res := &Result{
		Width:   resized.Bounds().Dx(),
		Height:  resized.Bounds().Dy(),
		Resized: true,
	}
	if format == "jpeg" {
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		res.ContentType, res.Ext = "image/jpeg", ".jpg"
	} else {
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		res.ContentType, res.Ext = "image/png", ".png"
	}
	res.Data = buf.Bytes()
	return res, nil
}

// resize вписывает изображение в maxWidth x maxHeight с сохранением пропорций
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
