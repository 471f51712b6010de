package entity

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DetectionResult is the per-frame feedback sent over the live analysis
// websocket. Instructions guide the user toward an aligned capture; once the
// face is aligned the frame is classified and Conditions is populated.
type DetectionResult struct {
	Status       string             `json:"status"`
	Instructions []string           `json:"instructions"`
	FacePosition *Position          `json:"face_position,omitempty"`
	FaceSize     *float64           `json:"face_size,omitempty"`
	FrameCenter  Position           `json:"frame_center"`
	Deviations   map[string]float64 `json:"deviations,omitempty"`
	Conditions   []ConditionScore   `json:"conditions,omitempty"`
}
