package barber

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-desk/internal/domain/barber"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

type memBlob struct {
	lastKey      string
	lastMimeType string
	lastSize     int
}

func (b *memBlob) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	b.lastKey = key
	b.lastMimeType = contentType
	b.lastSize = len(data)
	return "mem://" + key, nil
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadPhotoStoresWebPAndRecordsURL(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo := repository.NewBarberStoreRepository(st)
	bs := &memBlob{}

	b, err := repo.Create(ctx, domain.CreateInput{Name: "Miguel", Services: []string{"Haircut"}})
	require.NoError(t, err)

	uc := NewUploadPhoto(repo, bs)
	url, err := uc.Execute(ctx, b.ID, pngBytes(t, 64, 64))
	require.NoError(t, err)

	assert.Equal(t, "mem://barbers/"+b.ID+".webp", url)
	assert.Equal(t, "barbers/"+b.ID+".webp", bs.lastKey)
	assert.Equal(t, "image/webp", bs.lastMimeType)
	assert.Greater(t, bs.lastSize, 0)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, url, got.PhotoURL)
}

func TestUploadPhotoRejectsNonImage(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBarberStoreRepository(store.NewMemoryStore())

	b, err := repo.Create(ctx, domain.CreateInput{Name: "Miguel", Services: []string{"Haircut"}})
	require.NoError(t, err)

	uc := NewUploadPhoto(repo, &memBlob{})
	_, err = uc.Execute(ctx, b.ID, []byte("definitely not an image"))

	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
}

func TestUploadPhotoUnknownBarber(t *testing.T) {
	repo := repository.NewBarberStoreRepository(store.NewMemoryStore())
	uc := NewUploadPhoto(repo, &memBlob{})

	_, err := uc.Execute(context.Background(), "missing", pngBytes(t, 8, 8))

	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}

func TestScaleDownBoundsWidth(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1024, 768))

	out := scaleDown(src)
	assert.Equal(t, maxPhotoWidth, out.Bounds().Dx())
	assert.Equal(t, 384, out.Bounds().Dy())

	// Small images pass through untouched.
	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, small.Bounds(), scaleDown(small).Bounds())
}
