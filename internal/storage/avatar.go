package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/trimhub/booking-api/internal/config"
)

// ======================================================
// AVATAR STORAGE (S3)
// ======================================================

// avatares são normalizados antes do upload: redimensionados e
// reencodados em webp, nunca servidos no formato original
const (
	maxAvatarSide = 512
	webpQuality   = 85
)

type AvatarStore struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKey,
				cfg.S3SecretKey,
				"",
			),
		),
	}

	// endpoint customizado cobre MinIO e afins em desenvolvimento
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &AvatarStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

// Upload decodifica a imagem (jpeg/png), reduz para no máximo
// maxAvatarSide, converte para webp e envia ao bucket. Retorna a URL
// pública do objeto.
func (s *AvatarStore) Upload(ctx context.Context, raw []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	img := downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := "avatars/" + uuid.NewString() + ".webp"

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put avatar: %w", err)
	}

	return s.urlFor(key), nil
}

func (s *AvatarStore) urlFor(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxAvatarSide && h <= maxAvatarSide {
		return src
	}

	if w > h {
		h = h * maxAvatarSide / w
		w = maxAvatarSide
	} else {
		w = w * maxAvatarSide / h
		h = maxAvatarSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
