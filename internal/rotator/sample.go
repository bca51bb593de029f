package rotator

import "time"

// Sample is one phrase's full state at an instant, used by the snapshot and
// timeline outputs.
type Sample struct {
	Index    int     `json:"index"`
	Phrase   string  `json:"phrase"`
	Phase    string  `json:"phase"`
	Progress float64 `json:"progress"`
	Offset   float64 `json:"offset"`
	Opacity  float64 `json:"opacity"`
}

// SampleAll evaluates every phrase at the given elapsed time. Evaluations
// are independent, so order carries no meaning beyond phrase index.
func (r *Rotator) SampleAll(elapsed time.Duration) []Sample {
	samples := make([]Sample, len(r.phrases))
	for i := range r.phrases {
		state := r.PhaseAt(i, elapsed)
		frame := r.FrameAt(i, elapsed)
		samples[i] = Sample{
			Index:    i,
			Phrase:   r.phrases[i],
			Phase:    state.Phase.String(),
			Progress: state.Progress,
			Offset:   frame.Offset,
			Opacity:  frame.Opacity,
		}
	}
	return samples
}
