package game

import (
	"math/rand"
	"strings"
	"time"
)

// RoomCode is the single live room. There is no multiplexing: one show,
// one document.
const RoomCode = "LIVE-DZ"

// DefaultMaxRounds matches the televised format of three manches.
const DefaultMaxRounds = 3

// Reducer computes room transitions. It is a pure function of
// (state, action) plus the two injected effect sources: a coin flip for
// random hand assignment and a clock for sound-cue ids.
type Reducer struct {
	coin func() bool
	now  func() time.Time
}

// NewReducer builds a reducer with real randomness and the wall clock.
func NewReducer() *Reducer {
	return NewReducerWith(func() bool { return rand.Intn(2) == 0 }, time.Now)
}

// NewReducerWith injects the coin and clock, for deterministic tests.
func NewReducerWith(coin func() bool, now func() time.Time) *Reducer {
	return &Reducer{coin: coin, now: now}
}

// NewRoom synthesizes the fresh room used when nothing is stored yet.
func NewRoom() *Room {
	return &Room{
		Code:              RoomCode,
		State:             StateLobby,
		HostID:            "admin",
		TeamAName:         "FAMILLE A",
		TeamBName:         "FAMILLE B",
		CurrentQuestionID: 1,
		MaxRounds:         DefaultMaxRounds,
		ActiveTeam:        TeamNone,
		Users:             []User{},
		ActiveQuestions:   DefaultQuestions(),
	}
}

// Apply returns the room after the action. The input is never mutated.
// A nil current room is lazily created first. ResetGame returns nil,
// which the caller interprets as "delete the stored room". Actions whose
// preconditions do not hold leave the room untouched.
func (r *Reducer) Apply(current *Room, action Action) *Room {
	var next *Room
	if current == nil {
		next = NewRoom()
	} else {
		next = current.Clone()
	}

	switch a := action.(type) {
	case nil, Init:
		// Creation only.

	case StartGame:
		if next.State == StateFinished {
			break
		}
		next.State = StateRound
		next.Strikes = 0
		next.RoundScore = 0
		if next.ActiveTeam == TeamNone {
			next.ActiveTeam = r.flip()
		}

	case PickRandomTeam:
		next.ActiveTeam = r.flip()
		r.cue(next, SoundTada)

	case RevealAnswer:
		q := next.CurrentQuestion()
		if q == nil {
			break
		}
		ans := findAnswer(q, a.AnswerID)
		if ans == nil || ans.Revealed {
			break
		}
		ans.Revealed = true
		next.RoundScore += ans.Points
		r.cue(next, SoundDing)

		if next.State == StateSteal {
			// Steal succeeded: the stealing team takes the whole pot.
			next.addScore(next.ActiveTeam, next.RoundScore)
			next.closeRound()
			break
		}
		if allRevealed(q) {
			next.addScore(next.ActiveTeam, next.RoundScore)
			next.closeRound()
		}

	case AddStrike:
		r.cue(next, SoundBuzzer)
		if next.State == StateSteal {
			// Steal failed: the pot returns to the team that held the
			// hand before the flip.
			original := TeamA
			if next.ActiveTeam == TeamA {
				original = TeamB
			}
			next.addScore(original, next.RoundScore)
			next.closeRound()
			break
		}
		if next.Strikes < 3 {
			next.Strikes++
		}

	case ActivateSteal:
		next.State = StateSteal
		if next.ActiveTeam == TeamA {
			next.ActiveTeam = TeamB
		} else {
			next.ActiveTeam = TeamA
		}
		r.cue(next, SoundTada)

	case EndRound:
		next.addScore(a.WinnerTeam, next.RoundScore)
		next.closeRound()

	case AddPlayer:
		if a.User.ID == "" || next.findUser(a.User.ID) != nil {
			break
		}
		u := a.User
		if u.Team != TeamA && u.Team != TeamB {
			u.Team = TeamNone
		}
		u.IsCaptain = false
		u.Score = 0
		next.Users = append(next.Users, u)

	case RemovePlayer:
		kept := next.Users[:0]
		for _, u := range next.Users {
			if u.ID != a.UserID {
				kept = append(kept, u)
			}
		}
		next.Users = kept

	case SetPlayerTeam:
		u := next.findUser(a.UserID)
		if u == nil {
			break
		}
		u.Team = a.Team
		// Switching sides forfeits captaincy.
		u.IsCaptain = false

	case SetCaptain:
		target := next.findUser(a.UserID)
		if target == nil {
			break
		}
		for i := range next.Users {
			if next.Users[i].Team == target.Team {
				next.Users[i].IsCaptain = next.Users[i].ID == a.UserID
			}
		}

	case SetTeamName:
		name := strings.TrimSpace(a.Name)
		if name == "" {
			break
		}
		name = strings.ToUpper(name)
		switch a.Team {
		case TeamA:
			next.TeamAName = name
		case TeamB:
			next.TeamBName = name
		}

	case UpdateScore:
		if a.Value < 0 {
			break
		}
		switch a.Team {
		case TeamA:
			next.TeamAScore = a.Value
		case TeamB:
			next.TeamBScore = a.Value
		}

	case SetMaxRounds:
		if a.Count < 1 {
			break
		}
		count := a.Count
		if n := len(next.ActiveQuestions); count > n {
			count = n
		}
		next.MaxRounds = count

	case SetActiveTeam:
		if a.Team != TeamA && a.Team != TeamB && a.Team != TeamNone {
			break
		}
		next.ActiveTeam = a.Team

	case SetQuestions:
		if len(a.Questions) == 0 {
			break
		}
		questions := make([]Question, len(a.Questions))
		for i, q := range a.Questions {
			answers := make([]Answer, len(q.Answers))
			for j, ans := range q.Answers {
				ans.Revealed = false
				answers[j] = ans
			}
			// Renumber so the round pointer stays a 1-based position;
			// closeRound counts rounds by comparing it to MaxRounds.
			q.ID = i + 1
			q.Answers = answers
			questions[i] = q
		}
		next.ActiveQuestions = questions
		next.CurrentQuestionID = 1
		next.State = StateLobby
		next.RoundScore = 0
		next.Strikes = 0
		next.ActiveTeam = TeamNone
		if next.MaxRounds > len(questions) {
			next.MaxRounds = len(questions)
		}

	case ResetGame:
		return nil
	}

	return next
}

func (r *Reducer) flip() Team {
	if r.coin() {
		return TeamA
	}
	return TeamB
}

func (r *Reducer) cue(room *Room, sound string) {
	room.LastSound = &SoundCue{ID: r.now().UnixMilli(), Type: sound}
}

// closeRound ends the current manche: back to the lobby, pointer
// advanced, pot and strikes cleared, hand released. Running past the
// last question finishes the game for good.
func (room *Room) closeRound() {
	room.State = StateLobby
	room.CurrentQuestionID++
	room.RoundScore = 0
	room.Strikes = 0
	room.ActiveTeam = TeamNone
	if room.CurrentQuestionID > room.MaxRounds || room.CurrentQuestionID > len(room.ActiveQuestions) {
		room.State = StateFinished
	}
}

func (room *Room) findUser(id string) *User {
	for i := range room.Users {
		if room.Users[i].ID == id {
			return &room.Users[i]
		}
	}
	return nil
}

func findAnswer(q *Question, id int) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}

func allRevealed(q *Question) bool {
	for _, a := range q.Answers {
		if !a.Revealed {
			return false
		}
	}
	return true
}
