package interaction

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fukimorihigh/server/audit"
	"github.com/fukimorihigh/server/game/progression"
	"github.com/fukimorihigh/server/game/reputation"
	"github.com/fukimorihigh/server/game/session"
	"github.com/fukimorihigh/server/game/social"
)

// Event is one player action submitted for processing.
type Event struct {
	ActorID        string   `json:"actor_id"`
	Action         string   `json:"action"`
	Emotion        string   `json:"emotion"`
	Witnesses      []string `json:"witnesses"`
	Location       string   `json:"location"`
	AchievementKey string   `json:"achievement_key,omitempty"`
	TraceID        string   `json:"-"`
	IP             string   `json:"-"`
}

// Outcome collects everything one processed event changed.
type Outcome struct {
	Social      *social.Result           `json:"social"`
	Gain        progression.Gain         `json:"gain"`
	Progression *progression.AwardResult `json:"progression"`
	Achievement *reputation.Unlocked     `json:"achievement,omitempty"`
}

// Service orchestrates one interaction event end to end: social
// propagation, experience award, optional achievement trigger, audit.
// Stages are not transactional across engines; a failed later stage
// leaves earlier stages applied.
type Service struct {
	social      *social.Service
	progression *progression.Service
	reputation  *reputation.Service
	sessions    *session.Manager
	auditor     *audit.Service
	logger      *zap.Logger
}

// NewService wires the orchestrator. auditor may be nil (tests).
func NewService(soc *social.Service, prog *progression.Service, rep *reputation.Service, sess *session.Manager, auditor *audit.Service, logger *zap.Logger) *Service {
	return &Service{
		social:      soc,
		progression: prog,
		reputation:  rep,
		sessions:    sess,
		auditor:     auditor,
		logger:      logger,
	}
}

// Process runs one event under the world's mutation lock.
func (svc *Service) Process(ctx context.Context, worldID string, ev Event) (*Outcome, error) {
	start := time.Now()
	out := &Outcome{}

	err := svc.sessions.Do(ctx, worldID, func() error {
		res, err := svc.social.ProcessGroupInteraction(ctx, worldID, ev.ActorID, ev.Action, ev.Emotion, ev.Witnesses, ev.Location)
		if err != nil {
			return err
		}
		out.Social = res

		interlocutor := ""
		if len(ev.Witnesses) > 0 {
			interlocutor = ev.Witnesses[0]
		}
		out.Gain = svc.progression.ClassifyInput(ctx, worldID, ev.Action, ev.Emotion, interlocutor)
		award, err := svc.progression.AwardExperience(ctx, worldID, out.Gain)
		if err != nil {
			return err
		}
		out.Progression = award

		if ev.AchievementKey != "" {
			unlocked, err := svc.reputation.Trigger(ctx, worldID, ev.AchievementKey)
			if err != nil {
				return err
			}
			out.Achievement = unlocked
		}
		return nil
	})

	svc.writeAudit(worldID, ev, out, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (svc *Service) writeAudit(worldID string, ev Event, out *Outcome, err error, elapsed time.Duration) {
	if svc.auditor == nil {
		return
	}
	classification := "neutral"
	if base := social.ClassifyAction(ev.Action); base > 0 {
		classification = "positive"
	} else if base < 0 {
		classification = "negative"
	}
	impact := 0
	if out.Social != nil {
		impact = out.Social.ReputationChange
	}
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	svc.auditor.Log(audit.Entry{
		TraceID:        ev.TraceID,
		WorldID:        worldID,
		ActorID:        ev.ActorID,
		Action:         ev.Action,
		Classification: classification,
		Impact:         impact,
		Witnesses:      ev.Witnesses,
		Location:       ev.Location,
		Request:        ev,
		Response:       out,
		Error:          errText,
		IP:             ev.IP,
		DurationMs:     int(elapsed.Milliseconds()),
	})
}
