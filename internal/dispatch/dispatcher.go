// Package dispatch abstracts the downstream notification/outreach channels.
// Dispatch is fire-and-forget: the engine submits a request, records the
// immediate outcome, and never waits for delivery confirmation.
package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
)

// Request is one intervention submission.
type Request struct {
	UserID    uuid.UUID               `json:"user_id"`
	Type      domain.InterventionType `json:"type"`
	Reasoning string                  `json:"reasoning"`
	Priority  int                     `json:"priority"`
	RiskLevel domain.RiskLevel        `json:"risk_level"`
}

// Dispatcher submits intervention requests to a delivery channel.
// Implementations must respect the context deadline; the engine wraps every
// call in a short timeout so dispatch can never stall an evaluation.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) error
}

// Channel names for the delivery streams.
const (
	ChannelPush       = "push"
	ChannelMessage    = "message"
	ChannelAgentTasks = "agent_tasks"
	ChannelProgram    = "program"
)

// ChannelFor maps an intervention type to its delivery channel.
func ChannelFor(t domain.InterventionType) string {
	switch t {
	case domain.InterventionPushNotification:
		return ChannelPush
	case domain.InterventionAutomatedMessage:
		return ChannelMessage
	case domain.InterventionAgentOutreach, domain.InterventionSocialSupport:
		return ChannelAgentTasks
	default:
		// Protocol/goal/content/gamification changes are applied by the
		// program service rather than delivered to the user directly.
		return ChannelProgram
	}
}
