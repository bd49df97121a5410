package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name       string
		actionType string
		payload    string
		want       Action
	}{
		{"init", TypeInit, ``, Init{}},
		{"start game", TypeStartGame, `{}`, StartGame{}},
		{"pick random team", TypePickRandomTeam, ``, PickRandomTeam{}},
		{"reveal answer", TypeRevealAnswer, `{"answerId":3}`, RevealAnswer{AnswerID: 3}},
		{"add strike", TypeAddStrike, ``, AddStrike{}},
		{"activate steal", TypeActivateSteal, ``, ActivateSteal{}},
		{"end round", TypeEndRound, `{"winnerTeam":"B"}`, EndRound{WinnerTeam: TeamB}},
		{"add player", TypeAddPlayer, `{"user":{"id":"u1","nickname":"Karim"}}`,
			AddPlayer{User: User{ID: "u1", Nickname: "Karim"}}},
		{"add player if not exists", TypeAddPlayerIfNew, `{"user":{"id":"u1"}}`,
			AddPlayer{User: User{ID: "u1"}}},
		{"remove player", TypeRemovePlayer, `{"userId":"u1"}`, RemovePlayer{UserID: "u1"}},
		{"set player team", TypeSetPlayerTeam, `{"userId":"u1","team":"A"}`,
			SetPlayerTeam{UserID: "u1", Team: TeamA}},
		{"set captain", TypeSetCaptain, `{"userId":"u1"}`, SetCaptain{UserID: "u1"}},
		{"set team name", TypeSetTeamName, `{"team":"A","name":"les rouges"}`,
			SetTeamName{Team: TeamA, Name: "les rouges"}},
		{"update score", TypeUpdateScore, `{"team":"B","value":70}`,
			UpdateScore{Team: TeamB, Value: 70}},
		{"set max rounds", TypeSetMaxRounds, `{"count":5}`, SetMaxRounds{Count: 5}},
		{"set active team", TypeSetActiveTeam, `{"team":"NONE"}`, SetActiveTeam{Team: TeamNone}},
		{"set questions", TypeSetQuestions,
			`{"questions":[{"id":1,"theme":"T","questionText":"Q","answers":[{"id":1,"text":"R","points":10}]}]}`,
			SetQuestions{Questions: []Question{{ID: 1, Theme: "T", QuestionText: "Q",
				Answers: []Answer{{ID: 1, Text: "R", Points: 10}}}}}},
		{"reset game", TypeResetGame, ``, ResetGame{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.actionType, json.RawMessage(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionUnknownTypeIsNoop(t *testing.T) {
	got, err := ParseAction("MAKE_COFFEE", json.RawMessage(`{"sugar":2}`))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseActionBadPayload(t *testing.T) {
	_, err := ParseAction(TypeRevealAnswer, json.RawMessage(`{"answerId":"not a number"}`))
	assert.Error(t, err)
}
