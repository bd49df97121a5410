package game

import (
	"encoding/json"
	"fmt"
)

// Action is one régie command against the room. The catalog is a closed
// union: every variant carries its own typed payload and the reducer
// matches over all of them.
type Action interface {
	ActionType() string
}

// Wire-level action names, as sent by the régie panel.
const (
	TypeInit           = "INIT"
	TypeStartGame      = "START_GAME"
	TypePickRandomTeam = "PICK_RANDOM_TEAM"
	TypeRevealAnswer   = "REVEAL_ANSWER"
	TypeAddStrike      = "ADD_STRIKE"
	TypeActivateSteal  = "ACTIVATE_STEAL"
	TypeEndRound       = "END_ROUND"
	TypeAddPlayer      = "ADD_PLAYER"
	TypeAddPlayerIfNew = "ADD_PLAYER_IF_NOT_EXISTS"
	TypeRemovePlayer   = "REMOVE_PLAYER"
	TypeSetPlayerTeam  = "SET_PLAYER_TEAM"
	TypeSetCaptain     = "SET_CAPTAIN"
	TypeSetTeamName    = "SET_TEAM_NAME"
	TypeUpdateScore    = "UPDATE_SCORE"
	TypeSetMaxRounds   = "SET_MAX_ROUNDS"
	TypeSetActiveTeam  = "SET_ACTIVE_TEAM"
	TypeSetQuestions   = "SET_QUESTIONS"
	TypeResetGame      = "RESET_GAME"
)

// Init exists only to trigger lazy room creation.
type Init struct{}

type StartGame struct{}

type PickRandomTeam struct{}

type RevealAnswer struct {
	AnswerID int `json:"answerId"`
}

type AddStrike struct{}

type ActivateSteal struct{}

type EndRound struct {
	WinnerTeam Team `json:"winnerTeam"`
}

// AddPlayer appends a player to the roster. Idempotent on User.ID.
type AddPlayer struct {
	User User `json:"user"`
}

type RemovePlayer struct {
	UserID string `json:"userId"`
}

type SetPlayerTeam struct {
	UserID string `json:"userId"`
	Team   Team   `json:"team"`
}

type SetCaptain struct {
	UserID string `json:"userId"`
}

type SetTeamName struct {
	Team Team   `json:"team"`
	Name string `json:"name"`
}

type UpdateScore struct {
	Team  Team `json:"team"`
	Value int  `json:"value"`
}

type SetMaxRounds struct {
	Count int `json:"count"`
}

type SetActiveTeam struct {
	Team Team `json:"team"`
}

type SetQuestions struct {
	Questions []Question `json:"questions"`
}

type ResetGame struct{}

func (Init) ActionType() string           { return TypeInit }
func (StartGame) ActionType() string      { return TypeStartGame }
func (PickRandomTeam) ActionType() string { return TypePickRandomTeam }
func (RevealAnswer) ActionType() string   { return TypeRevealAnswer }
func (AddStrike) ActionType() string      { return TypeAddStrike }
func (ActivateSteal) ActionType() string  { return TypeActivateSteal }
func (EndRound) ActionType() string       { return TypeEndRound }
func (AddPlayer) ActionType() string      { return TypeAddPlayer }
func (RemovePlayer) ActionType() string   { return TypeRemovePlayer }
func (SetPlayerTeam) ActionType() string  { return TypeSetPlayerTeam }
func (SetCaptain) ActionType() string     { return TypeSetCaptain }
func (SetTeamName) ActionType() string    { return TypeSetTeamName }
func (UpdateScore) ActionType() string    { return TypeUpdateScore }
func (SetMaxRounds) ActionType() string   { return TypeSetMaxRounds }
func (SetActiveTeam) ActionType() string  { return TypeSetActiveTeam }
func (SetQuestions) ActionType() string   { return TypeSetQuestions }
func (ResetGame) ActionType() string      { return TypeResetGame }

// ParseAction decodes a wire action into its typed variant. An unknown
// type yields (nil, nil): the dispatcher treats it as a no-op but still
// re-persists the state, which is harmless. A payload that fails to
// decode is reported to the caller.
func ParseAction(actionType string, payload json.RawMessage) (Action, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	decode := func(dst any) error {
		if err := json.Unmarshal(payload, dst); err != nil {
			return fmt.Errorf("decode %s payload: %w", actionType, err)
		}
		return nil
	}

	switch actionType {
	case TypeInit:
		return Init{}, nil
	case TypeStartGame:
		return StartGame{}, nil
	case TypePickRandomTeam:
		return PickRandomTeam{}, nil
	case TypeRevealAnswer:
		var a RevealAnswer
		return a, decode(&a)
	case TypeAddStrike:
		return AddStrike{}, nil
	case TypeActivateSteal:
		return ActivateSteal{}, nil
	case TypeEndRound:
		var a EndRound
		return a, decode(&a)
	case TypeAddPlayer, TypeAddPlayerIfNew:
		var a AddPlayer
		return a, decode(&a)
	case TypeRemovePlayer:
		var a RemovePlayer
		return a, decode(&a)
	case TypeSetPlayerTeam:
		var a SetPlayerTeam
		return a, decode(&a)
	case TypeSetCaptain:
		var a SetCaptain
		return a, decode(&a)
	case TypeSetTeamName:
		var a SetTeamName
		return a, decode(&a)
	case TypeUpdateScore:
		var a UpdateScore
		return a, decode(&a)
	case TypeSetMaxRounds:
		var a SetMaxRounds
		return a, decode(&a)
	case TypeSetActiveTeam:
		var a SetActiveTeam
		return a, decode(&a)
	case TypeSetQuestions:
		var a SetQuestions
		return a, decode(&a)
	case TypeResetGame:
		return ResetGame{}, nil
	default:
		return nil, nil
	}
}
