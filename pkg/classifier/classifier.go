package classifier

import (
	"Dermalens/internal/entity"
	"errors"
	"image"

	"github.com/sirupsen/logrus"
)

var numClasses = len(entity.Conditions)

// ErrInvalidRegion marks crops that cannot be classified (nil or zero-size).
// It is surfaced before any numeric work happens so a malformed crop never
// turns into a shape fault deep in the forward pass.
var ErrInvalidRegion = errors.New("invalid face region")

type IClassifier interface {
	Predict(crop image.Image) (entity.ClassificationResult, error)
}

type conditionClassifier struct {
	weights *Weights
}

// New loads model weights from weightsPath. When the file does not exist the
// classifier starts with deterministic seeded weights, matching the training
// pipeline's bootstrap behavior; a warning is logged since predictions are
// not meaningful until a trained file is installed.
func New(weightsPath string, log *logrus.Logger) (IClassifier, error) {
	weights, err := LoadWeights(weightsPath)
	if err != nil {
		log.WithFields(logrus.Fields{
			"path":  weightsPath,
			"error": err.Error(),
		}).Warn("No usable model weights found, starting with seeded weights")
		weights = RandomWeights(1)
	} else {
		log.WithField("path", weightsPath).Info("Loaded condition model weights")
	}

	return &conditionClassifier{weights: weights}, nil
}

// NewFromWeights wraps an already validated parameter set.
func NewFromWeights(weights *Weights) (IClassifier, error) {
	if weights == nil {
		return nil, errors.New("weights are required")
	}
	if err := weights.validate(numClasses); err != nil {
		return nil, err
	}
	return &conditionClassifier{weights: weights}, nil
}

// Predict runs one face crop through the model. Inference is deterministic:
// identical crops with identical weights always produce identical outputs.
func (c *conditionClassifier) Predict(crop image.Image) (entity.ClassificationResult, error) {
	if crop == nil {
		return entity.ClassificationResult{}, ErrInvalidRegion
	}

	bounds := crop.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return entity.ClassificationResult{}, ErrInvalidRegion
	}

	probs := forward(preprocess(crop), c.weights)

	result := entity.ClassificationResult{
		Probabilities: make(map[entity.Condition]float64, numClasses),
	}
	for i, condition := range entity.Conditions {
		result.Probabilities[condition] = probs[i]
	}

	return result, nil
}
