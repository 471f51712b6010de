package entity

import "image"

// Frame is one decoded bitmap handed to the detection stage. Frames are
// request-scoped and discarded once the request is answered.
type Frame struct {
	Image  image.Image
	Index  int
	Width  int
	Height int
}

// FaceRegion is a detected face rectangle inside a Frame plus the detector's
// own quality score.
type FaceRegion struct {
	FrameIndex int
	Rect       image.Rectangle
	Score      float32
}

// ClassificationResult holds the per-label probabilities for one face crop.
// Labels are judged independently (sigmoid outputs), so the probabilities do
// not need to sum to 1.
type ClassificationResult struct {
	Probabilities map[Condition]float64
}

// ConditionScore is one label annotated with the probability the model
// assigned to it.
type ConditionScore struct {
	Condition  Condition `json:"condition"`
	Confidence float64   `json:"confidence"`
	Severity   Severity  `json:"severity"`
}

// FaceResult is the classifier output for one detected face, top labels first.
type FaceResult struct {
	FaceID     int              `json:"face_id"`
	FrameIndex int              `json:"frame_index"`
	Conditions []ConditionScore `json:"conditions"`
}

// DetectedCondition is one surviving label of the aggregation stage with the
// maximum confidence observed across all faces and frames.
type DetectedCondition struct {
	Condition  Condition `json:"condition"`
	Confidence float64   `json:"confidence"`
	Severity   Severity  `json:"severity"`
}
