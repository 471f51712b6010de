package classifier

import "math"

// tensor is a dense CHW float32 volume used by the forward pass.
type tensor struct {
	data []float32
	c    int
	h    int
	w    int
}

func newTensor(c, h, w int) *tensor {
	return &tensor{data: make([]float32, c*h*w), c: c, h: h, w: w}
}

func (t *tensor) at(c, y, x int) float32 {
	return t.data[(c*t.h+y)*t.w+x]
}

func (t *tensor) set(c, y, x int, v float32) {
	t.data[(c*t.h+y)*t.w+x] = v
}

// conv3x3 applies a 3x3 convolution with padding 1 and stride 1, fusing the
// ReLU activation that always follows it in this model.
func conv3x3(in *tensor, layer ConvLayer) *tensor {
	out := newTensor(layer.Out, in.h, in.w)

	for oc := 0; oc < layer.Out; oc++ {
		kernelBase := oc * layer.In * 9
		bias := layer.Bias[oc]
		for y := 0; y < in.h; y++ {
			for x := 0; x < in.w; x++ {
				sum := bias
				for ic := 0; ic < layer.In; ic++ {
					k := kernelBase + ic*9
					for ky := -1; ky <= 1; ky++ {
						sy := y + ky
						if sy < 0 || sy >= in.h {
							continue
						}
						for kx := -1; kx <= 1; kx++ {
							sx := x + kx
							if sx < 0 || sx >= in.w {
								continue
							}
							sum += layer.Kernel[k+(ky+1)*3+(kx+1)] * in.at(ic, sy, sx)
						}
					}
				}
				if sum < 0 {
					sum = 0
				}
				out.set(oc, y, x, sum)
			}
		}
	}

	return out
}

// maxPool2 halves spatial dimensions with a 2x2 window, stride 2.
func maxPool2(in *tensor) *tensor {
	out := newTensor(in.c, in.h/2, in.w/2)

	for c := 0; c < in.c; c++ {
		for y := 0; y < out.h; y++ {
			for x := 0; x < out.w; x++ {
				best := in.at(c, y*2, x*2)
				if v := in.at(c, y*2, x*2+1); v > best {
					best = v
				}
				if v := in.at(c, y*2+1, x*2); v > best {
					best = v
				}
				if v := in.at(c, y*2+1, x*2+1); v > best {
					best = v
				}
				out.set(c, y, x, best)
			}
		}
	}

	return out
}

// adaptiveAvgPool reduces each channel to a side x side grid by averaging the
// cells of an even partition, matching adaptive average pooling semantics.
func adaptiveAvgPool(in *tensor, side int) *tensor {
	out := newTensor(in.c, side, side)

	for c := 0; c < in.c; c++ {
		for oy := 0; oy < side; oy++ {
			y0 := oy * in.h / side
			y1 := (oy + 1) * in.h / side
			for ox := 0; ox < side; ox++ {
				x0 := ox * in.w / side
				x1 := (ox + 1) * in.w / side
				var sum float32
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						sum += in.at(c, y, x)
					}
				}
				out.set(c, oy, ox, sum/float32((y1-y0)*(x1-x0)))
			}
		}
	}

	return out
}

func linear(in []float32, layer LinearLayer, relu bool) []float32 {
	out := make([]float32, layer.Out)
	for o := 0; o < layer.Out; o++ {
		sum := layer.Bias[o]
		row := o * layer.In
		for i := 0; i < layer.In; i++ {
			sum += layer.Weight[row+i] * in[i]
		}
		if relu && sum < 0 {
			sum = 0
		}
		out[o] = sum
	}
	return out
}

func sigmoid(logits []float32) []float64 {
	probs := make([]float64, len(logits))
	for i, v := range logits {
		probs[i] = 1.0 / (1.0 + math.Exp(-float64(v)))
	}
	return probs
}

// forward runs the full model on a preprocessed input tensor and returns the
// independent per-label probabilities.
func forward(input *tensor, w *Weights) []float64 {
	x := conv3x3(input, w.Conv[0])
	x = maxPool2(x)
	x = conv3x3(x, w.Conv[1])
	x = maxPool2(x)
	x = conv3x3(x, w.Conv[2])
	x = maxPool2(x)
	x = conv3x3(x, w.Conv[3])
	x = adaptiveAvgPool(x, pooledSide)

	hidden := linear(x.data, w.FC1, true)
	logits := linear(hidden, w.FC2, false)

	return sigmoid(logits)
}
