package face_test

import (
	"image"
	"testing"

	"Dermalens/pkg/face"
)

func TestPadRect(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 200)

	tests := []struct {
		name string
		rect image.Rectangle
		pad  int
		want image.Rectangle
	}{
		{
			name: "interior rect grows on every side",
			rect: image.Rect(50, 50, 100, 100),
			pad:  20,
			want: image.Rect(30, 30, 120, 120),
		},
		{
			name: "rect near origin is clamped",
			rect: image.Rect(5, 5, 60, 60),
			pad:  20,
			want: image.Rect(0, 0, 80, 80),
		},
		{
			name: "rect near far edge is clamped",
			rect: image.Rect(150, 150, 195, 195),
			pad:  20,
			want: image.Rect(130, 130, 200, 200),
		},
		{
			name: "zero padding keeps the rect",
			rect: image.Rect(10, 20, 30, 40),
			pad:  0,
			want: image.Rect(10, 20, 30, 40),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := face.PadRect(tt.rect, tt.pad, bounds)
			if got != tt.want {
				t.Errorf("PadRect = %v, want %v", got, tt.want)
			}
		})
	}
}
