// Package storage uploads and deletes storefront images in DigitalOcean
// Spaces (S3-compatible) via minio-go. Every operation returns a structured
// result instead of propagating provider errors: callers check the Success
// flag and decide whether the failure is fatal for them (it never is for the
// surrounding database write).
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"petmarket/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// Prefijos de carpeta dentro del bucket.
const (
	PrefijoProductos = "productos"
	PrefijoMarcas    = "marcas"
)

// Resultado is the outcome of an upload.
type Resultado struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message"`
}

// ResultadoEliminacion is the outcome of a delete.
type ResultadoEliminacion struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Spaces is the object-storage adapter. When the credentials are incomplete
// the adapter still constructs (client == nil) and every operation returns a
// "not configured" failure — page rendering never depends on storage.
type Spaces struct {
	client *minio.Client
	bucket string
	region string
	cdnURL string
}

// NewSpaces builds the adapter from config. A nil client (missing or invalid
// credentials) is logged once and reported through Configurado.
func NewSpaces(cfg *config.Config) *Spaces {
	s := &Spaces{
		bucket: cfg.SpacesBucket,
		region: cfg.SpacesRegion,
		cdnURL: strings.TrimRight(cfg.SpacesCDNURL, "/"),
	}

	if !cfg.SpacesConfigurado() {
		log.Warn().Msg("DigitalOcean Spaces sin configurar: carga de imágenes deshabilitada")
		return s
	}

	endpoint := fmt.Sprintf("%s.digitaloceanspaces.com", cfg.SpacesRegion)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.SpacesAccessKey, cfg.SpacesSecretKey, ""),
		Secure: true,
		Region: cfg.SpacesRegion,
	})
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("no se pudo crear cliente de Spaces")
		return s
	}
	s.client = client
	return s
}

// Configurado reports whether uploads are possible.
func (s *Spaces) Configurado() bool { return s.client != nil }

// Subir uploads contenido under prefijo. With nombreUnico the object name is
// slug-timestamp.ext; otherwise it is just slug.ext, which silently
// overwrites an existing object with the same slug.
func (s *Spaces) Subir(ctx context.Context, contenido io.Reader, tamano int64, nombreArchivo, prefijo string, nombreUnico bool) Resultado {
	if !s.Configurado() {
		return Resultado{Success: false, Message: "DigitalOcean Spaces no está configurado"}
	}

	var path string
	if nombreUnico {
		path = NombreUnico(nombreArchivo, prefijo, time.Now())
	} else {
		path = NombreSanitizado(nombreArchivo, prefijo)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(nombreArchivo)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	}
	if strings.HasPrefix(contentType, "image/") {
		opts.CacheControl = "max-age=31536000" // 1 año
	}

	if _, err := s.client.PutObject(ctx, s.bucket, path, contenido, tamano, opts); err != nil {
		log.Error().Err(err).Str("path", path).Msg("error al subir archivo a Spaces")
		return Resultado{Success: false, Message: "Error al subir archivo: " + err.Error()}
	}

	url := s.URLPublica(path)
	log.Info().Str("path", path).Str("url", url).Msg("archivo subido a Spaces")
	return Resultado{Success: true, Path: path, URL: url, Message: "Archivo subido exitosamente"}
}

// Eliminar removes an object by bucket-relative path. Fully-qualified
// external URLs are refused without contacting the provider: they do not
// belong to this bucket.
func (s *Spaces) Eliminar(ctx context.Context, path string) ResultadoEliminacion {
	if path == "" {
		return ResultadoEliminacion{Success: false, Message: "No hay imagen para eliminar"}
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		log.Info().Str("path", path).Msg("URL externa detectada, no se eliminará")
		return ResultadoEliminacion{Success: false, Message: "URL externa, no se puede eliminar"}
	}
	if !s.Configurado() {
		return ResultadoEliminacion{Success: false, Message: "DigitalOcean Spaces no está configurado"}
	}

	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		log.Error().Err(err).Str("path", path).Msg("error al eliminar archivo de Spaces")
		return ResultadoEliminacion{Success: false, Message: "Error al eliminar archivo: " + err.Error()}
	}

	log.Info().Str("path", path).Msg("archivo eliminado de Spaces")
	return ResultadoEliminacion{Success: true, Message: "Archivo eliminado exitosamente"}
}

// Existe probes whether an object exists at path.
func (s *Spaces) Existe(ctx context.Context, path string) bool {
	if !s.Configurado() || path == "" {
		return false
	}
	_, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	return err == nil
}

// URLPublica resolves a stored path to the URL browsers should use: the CDN
// base when configured, the bucket endpoint otherwise. Paths that are
// already absolute URLs (legacy external images) pass through untouched.
func (s *Spaces) URLPublica(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if s.cdnURL != "" {
		return s.cdnURL + "/" + path
	}
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, path)
}
