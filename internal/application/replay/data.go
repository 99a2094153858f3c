package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left held
	R  bool `json:"r,omitempty"`  // Right held
	J  bool `json:"j,omitempty"`  // Jump pressed
	A  bool `json:"a,omitempty"`  // Attack pressed
	P  bool `json:"p,omitempty"`  // Parry pressed
	Ds bool `json:"ds,omitempty"` // Dash pressed
}

// ReplayData contains all data needed to replay a fight
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
