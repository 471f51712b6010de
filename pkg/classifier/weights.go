package classifier

import (
	"encoding/gob"
	"fmt"
	"math"
	"math/rand"
	"os"
)

// ConvLayer holds one 3x3 convolution, kernel flattened in OIHW order.
type ConvLayer struct {
	In     int
	Out    int
	Kernel []float32
	Bias   []float32
}

// LinearLayer holds one fully connected layer, weight flattened row-major
// [Out][In].
type LinearLayer struct {
	In     int
	Out    int
	Weight []float32
	Bias   []float32
}

// Weights is the full parameter set of the condition model: four conv blocks
// followed by two linear layers.
type Weights struct {
	Conv [4]ConvLayer
	FC1  LinearLayer
	FC2  LinearLayer
}

var convChannels = [5]int{3, 32, 64, 128, 256}

const (
	inputSize  = 224
	pooledSide = 4
	hiddenSize = 512
)

// LoadWeights reads a gob-encoded weight file and validates every layer shape
// before the model is allowed to serve.
func LoadWeights(path string) (*Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	var w Weights
	if err := gob.NewDecoder(f).Decode(&w); err != nil {
		return nil, fmt.Errorf("failed to decode weights file: %w", err)
	}

	if err := w.validate(numClasses); err != nil {
		return nil, fmt.Errorf("invalid weights file: %w", err)
	}

	return &w, nil
}

// RandomWeights builds a deterministic, seeded parameter set. Used when no
// trained weight file is present so the service still starts; predictions are
// meaningless until real weights are installed.
func RandomWeights(seed int64) *Weights {
	rng := rand.New(rand.NewSource(seed))

	w := &Weights{}
	for i := 0; i < 4; i++ {
		in, out := convChannels[i], convChannels[i+1]
		w.Conv[i] = ConvLayer{
			In:     in,
			Out:    out,
			Kernel: kaiming(rng, out*in*9, in*9),
			Bias:   make([]float32, out),
		}
	}

	flat := convChannels[4] * pooledSide * pooledSide
	w.FC1 = LinearLayer{In: flat, Out: hiddenSize, Weight: kaiming(rng, hiddenSize*flat, flat), Bias: make([]float32, hiddenSize)}
	w.FC2 = LinearLayer{In: hiddenSize, Out: numClasses, Weight: kaiming(rng, numClasses*hiddenSize, hiddenSize), Bias: make([]float32, numClasses)}

	return w
}

func kaiming(rng *rand.Rand, n, fanIn int) []float32 {
	scale := float32(math.Sqrt(2.0 / float64(fanIn)))
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(rng.NormFloat64()) * scale
	}
	return values
}

func (w *Weights) validate(classes int) error {
	for i := 0; i < 4; i++ {
		layer := w.Conv[i]
		in, out := convChannels[i], convChannels[i+1]
		if layer.In != in || layer.Out != out {
			return fmt.Errorf("conv %d has channels %dx%d, want %dx%d", i, layer.In, layer.Out, in, out)
		}
		if len(layer.Kernel) != out*in*9 || len(layer.Bias) != out {
			return fmt.Errorf("conv %d has malformed kernel or bias", i)
		}
	}

	flat := convChannels[4] * pooledSide * pooledSide
	if w.FC1.In != flat || w.FC1.Out != hiddenSize ||
		len(w.FC1.Weight) != hiddenSize*flat || len(w.FC1.Bias) != hiddenSize {
		return fmt.Errorf("fc1 has malformed shape")
	}
	if w.FC2.In != hiddenSize || w.FC2.Out != classes ||
		len(w.FC2.Weight) != classes*hiddenSize || len(w.FC2.Bias) != classes {
		return fmt.Errorf("fc2 has malformed shape")
	}

	return nil
}
