package classifier

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageNet channel statistics; the model is trained with the same constants.
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// preprocess resizes a face crop to the fixed model resolution and applies
// per-channel normalization, producing the CHW input tensor.
func preprocess(crop image.Image) *tensor {
	resized := image.NewRGBA(image.Rect(0, 0, inputSize, inputSize))
	draw.CatmullRom.Scale(resized, resized.Bounds(), crop, crop.Bounds(), draw.Src, nil)

	t := newTensor(3, inputSize, inputSize)
	for y := 0; y < inputSize; y++ {
		for x := 0; x < inputSize; x++ {
			offset := resized.PixOffset(x, y)
			r := float32(resized.Pix[offset]) / 255.0
			g := float32(resized.Pix[offset+1]) / 255.0
			b := float32(resized.Pix[offset+2]) / 255.0

			t.set(0, y, x, (r-channelMean[0])/channelStd[0])
			t.set(1, y, x, (g-channelMean[1])/channelStd[1])
			t.set(2, y, x, (b-channelMean[2])/channelStd[2])
		}
	}

	return t
}
