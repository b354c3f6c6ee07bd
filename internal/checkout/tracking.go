package checkout

import "time"

// Tracking stages, in order. Progress only moves forward.
var TrackingStages = []string{
	"Order Confirmed",
	"Processing",
	"Shipped",
	"Delivered",
}

func initialTracking(now time.Time) []TrackingStep {
	steps := make([]TrackingStep, len(TrackingStages))
	for i, name := range TrackingStages {
		steps[i] = TrackingStep{Step: name}
	}
	confirmed := now
	steps[0].Completed = true
	steps[0].Date = &confirmed
	return steps
}

// CompleteThrough returns a copy with every stage up to and including stage
// completed. Stages already complete keep their original date.
func (o Order) CompleteThrough(stage int, now time.Time) (Order, error) {
	if stage < 0 || stage >= len(o.TrackingSteps) {
		return o, ErrInvalidStage
	}

	out := o.Clone()
	for i := 0; i <= stage; i++ {
		out.TrackingSteps[i].Completed = true
		if out.TrackingSteps[i].Date == nil {
			d := now
			out.TrackingSteps[i].Date = &d
		}
	}
	return out, nil
}

// CurrentStage is the index of the furthest completed stage, or -1.
func (o Order) CurrentStage() int {
	last := -1
	for i, s := range o.TrackingSteps {
		if s.Completed {
			last = i
		}
	}
	return last
}
