package commands

import "fmt"

// ScoreHandler reports score and turn count without consuming a turn.
type ScoreHandler struct {
	env *Env
}

func NewScoreHandler(env *Env) *ScoreHandler {
	return &ScoreHandler{env: env}
}

func (h *ScoreHandler) CanHandle(cmd *Command) bool {
	return cmd.Verb == "score"
}

func (h *ScoreHandler) Suggestions() []string {
	return []string{"score"}
}

func (h *ScoreHandler) Handle(cmd *Command) Result {
	return Info(fmt.Sprintf("Your score is %d of a possible %d, in %d turns.",
		h.env.State.Score, h.env.State.MaxScore, h.env.Resolve.Progress.Turns()))
}
