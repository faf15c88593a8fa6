package barber

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	domain "github.com/BruksfildServices01/barber-desk/internal/domain/barber"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/infra/blob"
)

// maxPhotoWidth bounds stored photos; larger uploads are scaled down.
const maxPhotoWidth = 512

// ======================================================
// USE CASE — barber profile photo
// ======================================================

type UploadPhoto struct {
	repo domain.Repository
	blob blob.Store
}

func NewUploadPhoto(repo domain.Repository, bs blob.Store) *UploadPhoto {
	return &UploadPhoto{repo: repo, blob: bs}
}

// Execute decodes a JPEG or PNG upload, re-encodes it as WebP bounded to
// maxPhotoWidth, stores it and records the resulting URL on the barber.
func (uc *UploadPhoto) Execute(ctx context.Context, barberID string, upload []byte) (string, error) {
	b, err := uc.repo.GetByID(ctx, barberID)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", httperr.ErrNotFound("barber", barberID)
	}

	src, _, err := image.Decode(bytes.NewReader(upload))
	if err != nil {
		return "", httperr.ErrValidation("photo must be a valid JPEG or PNG image")
	}

	img := scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("barbers/%s.webp", barberID)
	url, err := uc.blob.Put(ctx, key, buf.Bytes(), "image/webp")
	if err != nil {
		return "", httperr.ErrStore("failed to upload photo", err)
	}

	if err := uc.repo.Update(ctx, barberID, domain.Partial{PhotoURL: &url}); err != nil {
		return "", err
	}
	return url, nil
}

func scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxPhotoWidth {
		return src
	}

	ratio := float64(maxPhotoWidth) / float64(bounds.Dx())
	height := int(math.Round(float64(bounds.Dy()) * ratio))

	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
