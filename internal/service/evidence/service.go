package evidence

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

const (
	maxEvidenceBytes = 150 * 1024
	minEvidenceBytes = 50 * 1024
)

// Service persists check-in selfies to the blob store. Paths are keyed by
// site, person and timestamp so concurrent uploads never collide.
type Service interface {
	// StoreCheckinEvidence decodes a base64 selfie, recompresses it to a
	// bounded JPEG and uploads it. Returns the storage path.
	StoreCheckinEvidence(ctx context.Context, siteID, personID string, observedAt time.Time, markType string, selfieBase64 string) (string, error)
}

type serviceImpl struct {
	storage storage.FileStorage
}

func NewService(storage storage.FileStorage) Service {
	return &serviceImpl{storage: storage}
}

// StoreCheckinEvidence implements Service.
func (s *serviceImpl) StoreCheckinEvidence(ctx context.Context, siteID, personID string, observedAt time.Time, markType string, selfieBase64 string) (string, error) {
	raw, err := decodeSelfie(selfieBase64)
	if err != nil {
		return "", err
	}

	compressed, err := compressImage(raw, maxEvidenceBytes, minEvidenceBytes)
	if err != nil {
		return "", fmt.Errorf("failed to compress evidence image: %w", err)
	}

	// evidence/{siteID}/{personID}/{date}/{type}-{unix}-{uuid}.jpg
	// Always JPEG after compression.
	dateStr := observedAt.UTC().Format("2006-01-02")
	filename := fmt.Sprintf("%s-%d-%s.jpg", markType, observedAt.Unix(), uuid.New().String())
	path := filepath.Join("evidence", siteID, personID, dateStr, filename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload evidence: %w", err)
	}

	return uploadedPath, nil
}

// decodeSelfie accepts both bare base64 and data-URL payloads
// ("data:image/jpeg;base64,....").
func decodeSelfie(selfieBase64 string) ([]byte, error) {
	payload := selfieBase64
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 selfie payload: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty selfie payload")
	}
	return raw, nil
}

// compressImage compresses an image to the target size range.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	// Reduce quality progressively before touching dimensions.
	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}

		compressed = buf.Bytes()

		if len(compressed) <= maxSize && len(compressed) >= minSize {
			return compressed, nil
		}

		if len(compressed) > maxSize {
			quality -= 5
			continue
		}

		// Smaller than the minimum is acceptable once quality is low.
		return compressed, nil
	}

	// Still too large: downscale toward the middle of the target range.
	if len(compressed) > maxSize {
		targetSize := (maxSize + minSize) / 2
		ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
		newWidth := int(float64(originalWidth) * ratio)
		newHeight := int(float64(originalHeight) * ratio)

		if newWidth < 600 {
			newWidth = 600
		}
		if newHeight < 400 {
			newHeight = 400
		}

		resized := resizeImage(img, newWidth, newHeight)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %w", err)
		}

		compressed = buf.Bytes()
	}

	return compressed, nil
}
