package model

// MicrophoneSamplesReq carries one frame of frequency magnitudes captured
// by the client, each in 0..255.
type MicrophoneSamplesReq struct {
	Samples []int `json:"samples" validate:"required,min=1,max=1024,dive,min=0,max=255"`
}

func (r *MicrophoneSamplesReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// Bytes returns the samples as raw magnitudes.
func (r *MicrophoneSamplesReq) Bytes() []uint8 {
	out := make([]uint8, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = uint8(s)
	}
	return out
}
