package provisioning

import "github.com/clusterinthecloud/nodectl/internal/cloud"

// Outcome tags how a provisioning request ended. Expected conditions
// (already exists, provider rejected the launch) are outcomes, not
// errors: the caller branches on the tag, and only configuration
// defects surface as errors.
type Outcome int

const (
	// OutcomeReady means the node was launched and is routable.
	OutcomeReady Outcome = iota

	// OutcomeSkipped means another actor already owns this node's
	// lifecycle; nothing was done.
	OutcomeSkipped

	// OutcomeAborted means the launch failed after exhausting retries or
	// hitting a non-retryable provider error; logged, nothing to undo.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReady:
		return "ready"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one StartNode request.
type Result struct {
	Outcome  Outcome
	Instance cloud.Instance

	// Address is the node's private address as known at completion:
	// either the static IP supplied at launch or the one resolved from
	// the VNIC attachment. Empty for skipped and aborted requests.
	Address string
}
