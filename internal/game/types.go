package game

// State is the phase of play the room is in. DUEL is part of the show
// format but no transition currently produces it.
type State string

const (
	StateLobby    State = "LOBBY"
	StateDuel     State = "DUEL"
	StateRound    State = "ROUND"
	StateSteal    State = "STEAL"
	StateFinished State = "FINISHED"
)

// Team identifies which side holds the hand. NONE means nobody.
type Team string

const (
	TeamA    Team = "A"
	TeamB    Team = "B"
	TeamNone Team = "NONE"
)

type Answer struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Points   int    `json:"points"`
	Revealed bool   `json:"revealed"`
}

type Question struct {
	ID           int      `json:"id"`
	Theme        string   `json:"theme"`
	QuestionText string   `json:"questionText"`
	Answers      []Answer `json:"answers"`
}

type User struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Team      Team   `json:"team"`
	IsCaptain bool   `json:"isCaptain"`
	IsHost    bool   `json:"isHost"`
	Score     int    `json:"score"`
}

// SoundCue marks an audio event for observers of the outgoing state.
// The reducer never plays anything itself; displays watch this field.
type SoundCue struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

const (
	SoundDing   = "ding"
	SoundBuzzer = "buzzer"
	SoundTada   = "tada"
)

// Room is the single shared game aggregate broadcast from the régie to
// every plateau display.
type Room struct {
	Code              string     `json:"code"`
	State             State      `json:"state"`
	HostID            string     `json:"hostId"`
	TeamAName         string     `json:"teamAName"`
	TeamBName         string     `json:"teamBName"`
	TeamAScore        int        `json:"teamAScore"`
	TeamBScore        int        `json:"teamBScore"`
	RoundScore        int        `json:"roundScore"`
	Strikes           int        `json:"strikes"`
	CurrentQuestionID int        `json:"currentQuestionId"`
	MaxRounds         int        `json:"maxRounds"`
	ActiveTeam        Team       `json:"activeTeam"`
	Users             []User     `json:"users"`
	ActiveQuestions   []Question `json:"activeQuestions"`
	LastSound         *SoundCue  `json:"lastSound,omitempty"`
}

// Clone returns an independent deep copy of the room.
func (r *Room) Clone() *Room {
	next := *r
	next.Users = make([]User, len(r.Users))
	copy(next.Users, r.Users)
	next.ActiveQuestions = make([]Question, len(r.ActiveQuestions))
	for i, q := range r.ActiveQuestions {
		answers := make([]Answer, len(q.Answers))
		copy(answers, q.Answers)
		q.Answers = answers
		next.ActiveQuestions[i] = q
	}
	if r.LastSound != nil {
		cue := *r.LastSound
		next.LastSound = &cue
	}
	return &next
}

// CurrentQuestion returns the question the round pointer refers to, or
// nil if the pointer matches nothing.
func (r *Room) CurrentQuestion() *Question {
	for i := range r.ActiveQuestions {
		if r.ActiveQuestions[i].ID == r.CurrentQuestionID {
			return &r.ActiveQuestions[i]
		}
	}
	return nil
}

// Winner names the leading team once the game is over. Ties go to team A,
// matching how the show's scoreboard has always displayed it.
func (r *Room) Winner() (name string, score int) {
	if r.TeamAScore >= r.TeamBScore {
		return r.TeamAName, r.TeamAScore
	}
	return r.TeamBName, r.TeamBScore
}

func (r *Room) addScore(team Team, points int) {
	switch team {
	case TeamA:
		r.TeamAScore += points
	case TeamB:
		r.TeamBScore += points
	}
}
