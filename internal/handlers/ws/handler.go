// Package ws exposes episode sessions over a websocket. A client opens a
// connection, sends one start frame, then streams action frames; the
// server answers each with the resulting timestep. Episode boundaries are
// transparent, matching the engine's auto-reset contract.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/navix-rl/navix/internal/errors"
	episodesvc "github.com/navix-rl/navix/internal/orchestrators/episode"
	repo "github.com/navix-rl/navix/internal/repositories/episode"
)

// StartFrame is the first message on every connection.
type StartFrame struct {
	Env      string `json:"env"`
	Seed     uint64 `json:"seed"`
	Height   int    `json:"height,omitempty"`
	Width    int    `json:"width,omitempty"`
	MaxSteps int    `json:"max_steps,omitempty"`
}

// ActionFrame selects the next action for the session.
type ActionFrame struct {
	Action int32 `json:"action"`
}

// TimestepFrame is the server's reply to start and action frames.
type TimestepFrame struct {
	EpisodeID   string    `json:"episode_id"`
	T           int32     `json:"t"`
	Observation []float64 `json:"observation"`
	Action      int32     `json:"action"`
	Reward      float64   `json:"reward"`
	StepType    string    `json:"step_type"`
}

// ErrorFrame reports a failed frame without closing the connection for
// client mistakes; internal failures close the stream.
type ErrorFrame struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HandlerConfig holds the dependencies for the websocket handler
type HandlerConfig struct {
	EpisodeService episodesvc.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	if c.EpisodeService == nil {
		return errors.InvalidArgument("episode service is required")
	}
	return nil
}

// Handler upgrades HTTP requests and drives episode sessions.
type Handler struct {
	service  episodesvc.Service
	upgrader websocket.Upgrader
}

// NewHandler creates a new websocket handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		service: cfg.EpisodeService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	var start StartFrame
	if err := conn.ReadJSON(&start); err != nil {
		slog.Warn("failed to read start frame", "error", err)
		return
	}

	ctx := r.Context()
	started, err := h.service.StartEpisode(ctx, &episodesvc.StartEpisodeInput{
		EnvName: start.Env,
		Seed:    start.Seed,
		Overrides: repo.Overrides{
			Height:   start.Height,
			Width:    start.Width,
			MaxSteps: start.MaxSteps,
		},
	})
	if err != nil {
		_ = conn.WriteJSON(ErrorFrame{Error: errors.GetMessage(err), Code: errors.GetCode(err).String()})
		return
	}
	episodeID := started.EpisodeID

	defer func() {
		if _, err := h.service.EndEpisode(ctx, &episodesvc.EndEpisodeInput{EpisodeID: episodeID}); err != nil {
			slog.Warn("failed to end episode", "episode_id", episodeID, "error", err)
		}
	}()

	if err := conn.WriteJSON(TimestepFrame{
		EpisodeID:   episodeID,
		T:           started.Timestep.T,
		Observation: started.Timestep.Observation,
		Action:      started.Timestep.Action,
		Reward:      started.Timestep.Reward,
		StepType:    started.Timestep.StepType.String(),
	}); err != nil {
		return
	}

	for {
		var action ActionFrame
		if err := conn.ReadJSON(&action); err != nil {
			// normal disconnect or malformed frame, either way we are done
			return
		}

		out, err := h.service.Step(ctx, &episodesvc.StepInput{
			EpisodeID: episodeID,
			Action:    action.Action,
		})
		if err != nil {
			_ = conn.WriteJSON(ErrorFrame{Error: errors.GetMessage(err), Code: errors.GetCode(err).String()})
			if !errors.IsInvalidArgument(err) {
				return
			}
			continue
		}

		if err := conn.WriteJSON(TimestepFrame{
			EpisodeID:   episodeID,
			T:           out.Timestep.T,
			Observation: out.Timestep.Observation,
			Action:      out.Timestep.Action,
			Reward:      out.Timestep.Reward,
			StepType:    out.Timestep.StepType.String(),
		}); err != nil {
			return
		}
	}
}
