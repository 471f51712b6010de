package frames_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"Dermalens/pkg/frames"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, frameCount int) []byte {
	t.Helper()

	palette := color.Palette{color.Black, color.White}
	out := &gif.GIF{}
	for i := 0; i < frameCount; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 32, 32), palette)
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				frame.SetColorIndex(x, y, uint8((x+i)%2))
			}
		}
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, 10)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

func TestSample(t *testing.T) {
	sampler := frames.New(5)

	t.Run("empty upload", func(t *testing.T) {
		_, err := sampler.Sample(nil, "image/png")
		if !errors.Is(err, frames.ErrEmptyUpload) {
			t.Errorf("error = %v, want ErrEmptyUpload", err)
		}
	})

	t.Run("unsupported media type", func(t *testing.T) {
		_, err := sampler.Sample([]byte("data"), "application/pdf")
		if !errors.Is(err, frames.ErrUnsupportedMedia) {
			t.Errorf("error = %v, want ErrUnsupportedMedia", err)
		}
	})

	t.Run("corrupt image", func(t *testing.T) {
		_, err := sampler.Sample([]byte("not an image"), "image/png")
		if !errors.Is(err, frames.ErrCorruptUpload) {
			t.Errorf("error = %v, want ErrCorruptUpload", err)
		}
	})

	t.Run("still image yields one frame", func(t *testing.T) {
		got, err := sampler.Sample(encodePNG(t, 64, 48), "image/png")
		if err != nil {
			t.Fatalf("Sample error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("frames = %d, want 1", len(got))
		}
		if got[0].Index != 0 || got[0].Width != 64 || got[0].Height != 48 {
			t.Errorf("frame = index %d %dx%d, want index 0 64x48", got[0].Index, got[0].Width, got[0].Height)
		}
	})

	t.Run("mime parameters are ignored", func(t *testing.T) {
		got, err := sampler.Sample(encodePNG(t, 16, 16), "Image/PNG; charset=binary")
		if err != nil {
			t.Fatalf("Sample error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("frames = %d, want 1", len(got))
		}
	})

	t.Run("short gif keeps every frame", func(t *testing.T) {
		got, err := sampler.Sample(encodeGIF(t, 3), "image/gif")
		if err != nil {
			t.Fatalf("Sample error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("frames = %d, want 3", len(got))
		}
		for i, frame := range got {
			if frame.Index != i {
				t.Errorf("frame[%d].Index = %d, want %d", i, frame.Index, i)
			}
		}
	})

	t.Run("long gif is capped at max frames", func(t *testing.T) {
		got, err := sampler.Sample(encodeGIF(t, 12), "image/gif")
		if err != nil {
			t.Fatalf("Sample error: %v", err)
		}
		if len(got) != 5 {
			t.Errorf("frames = %d, want 5", len(got))
		}
	})

	t.Run("max frames below one is clamped", func(t *testing.T) {
		tight := frames.New(0)
		got, err := tight.Sample(encodeGIF(t, 4), "image/gif")
		if err != nil {
			t.Fatalf("Sample error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("frames = %d, want 1", len(got))
		}
	})

	t.Run("mjpeg stream without markers", func(t *testing.T) {
		_, err := sampler.Sample([]byte{0x00, 0x01, 0x02}, "video/x-motion-jpeg")
		if !errors.Is(err, frames.ErrNoFrames) {
			t.Errorf("error = %v, want ErrNoFrames", err)
		}
	})
}
