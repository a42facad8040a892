package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyNormalizaAcentosYEspacios(t *testing.T) {
	assert.Equal(t, "alimento-para-ninos", Slugify("Alimento para Niños", 50))
	assert.Equal(t, "arena-sanitaria-premium", Slugify("Arena_Sanitaria  Premium", 50))
	assert.Equal(t, "croquetas-25kg", Slugify("Croquetas 2.5Kg!", 50))
}

func TestSlugifyColapsaGuiones(t *testing.T) {
	assert.Equal(t, "a-b", Slugify("a --- b", 50))
	assert.Equal(t, "abc", Slugify("--abc--", 50))
}

func TestSlugifyRespetaLargoMaximo(t *testing.T) {
	slug := Slugify(strings.Repeat("a", 100), 30)
	assert.Len(t, slug, 30)
	// El corte nunca deja un guión colgando.
	slug = Slugify(strings.Repeat("ab ", 40), 5)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestSlugifyVacioUsaFallback(t *testing.T) {
	assert.Equal(t, "imagen", Slugify("日本語", 50))
	assert.Equal(t, "imagen", Slugify("!!!", 50))
	assert.Equal(t, "imagen", Slugify("", 50))
}

func TestNombreUnicoIncluyeTimestamp(t *testing.T) {
	ahora := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	nombre := NombreUnico("Foto Perro.JPG", "productos", ahora)
	assert.Equal(t, "productos/foto-perro-20260314-150926.jpg", nombre)
}

func TestNombreUnicoCapturaSlugLargo(t *testing.T) {
	ahora := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	nombre := NombreUnico(strings.Repeat("x", 80)+".png", "marcas", ahora)
	assert.Equal(t, "marcas/"+strings.Repeat("x", 30)+"-20260102-030405.png", nombre)
}

func TestNombreSanitizadoSinTimestamp(t *testing.T) {
	nombre := NombreSanitizado("Logo Ñandú.png", "marcas")
	assert.Equal(t, "marcas/logo-nandu.png", nombre)
}
