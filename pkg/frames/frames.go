package frames

import (
	"Dermalens/internal/entity"
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyUpload      = errors.New("upload is empty")
	ErrCorruptUpload    = errors.New("upload could not be decoded")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrNoFrames         = errors.New("no decodable frames in upload")
)

type IFrameSampler interface {
	Sample(data []byte, mimeType string) ([]entity.Frame, error)
}

type frameSampler struct {
	maxFrames int
}

// New builds a sampler that yields at most maxFrames frames for multi-frame
// media. Still images always yield exactly one frame.
func New(maxFrames int) IFrameSampler {
	if maxFrames < 1 {
		maxFrames = 1
	}
	return &frameSampler{maxFrames: maxFrames}
}

func (s *frameSampler) Sample(data []byte, mimeType string) ([]entity.Frame, error) {
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	switch normalizeMime(mimeType) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, ErrCorruptUpload
		}
		return []entity.Frame{makeFrame(img, 0)}, nil

	case "image/gif", "video/gif":
		return s.sampleGIF(data)

	case "video/x-motion-jpeg", "multipart/x-mixed-replace":
		return s.sampleMJPEG(data)

	default:
		return nil, ErrUnsupportedMedia
	}
}

func (s *frameSampler) sampleGIF(data []byte) ([]entity.Frame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, ErrCorruptUpload
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	picked := sampleIndices(len(g.Image), s.maxFrames)
	result := make([]entity.Frame, 0, len(picked))
	for i, idx := range picked {
		result = append(result, makeFrame(g.Image[idx], i))
	}
	return result, nil
}

// sampleMJPEG walks a motion-JPEG byte stream by SOI/EOI markers and decodes
// the evenly spaced subset of parts.
func (s *frameSampler) sampleMJPEG(data []byte) ([]entity.Frame, error) {
	var parts [][]byte
	rest := data
	for {
		start := bytes.Index(rest, []byte{0xFF, 0xD8, 0xFF})
		if start < 0 {
			break
		}
		end := bytes.Index(rest[start+2:], []byte{0xFF, 0xD9})
		if end < 0 {
			break
		}
		end += start + 2 + 2
		parts = append(parts, rest[start:end])
		rest = rest[end:]
	}
	if len(parts) == 0 {
		return nil, ErrNoFrames
	}

	picked := sampleIndices(len(parts), s.maxFrames)
	result := make([]entity.Frame, 0, len(picked))
	for i, idx := range picked {
		img, err := jpeg.Decode(bytes.NewReader(parts[idx]))
		if err != nil {
			continue
		}
		result = append(result, makeFrame(img, i))
	}
	if len(result) == 0 {
		return nil, ErrNoFrames
	}
	return result, nil
}

// sampleIndices picks up to want indices out of total at even temporal
// intervals, always including the first frame.
func sampleIndices(total, want int) []int {
	if total <= want {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, 0, want)
	step := float64(total) / float64(want)
	for i := 0; i < want; i++ {
		indices = append(indices, int(float64(i)*step))
	}
	return indices
}

func makeFrame(img image.Image, index int) entity.Frame {
	bounds := img.Bounds()
	return entity.Frame{
		Image:  img,
		Index:  index,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

func normalizeMime(mimeType string) string {
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}
