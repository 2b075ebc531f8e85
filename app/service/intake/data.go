package intake

// Stage is the conversation stage of a session. The summary stage is
// transient: it is entered and left within the final collecting turn, so it
// never appears on a parked session.
type Stage string

const (
	StageGreeting   Stage = "greeting"
	StageCollecting Stage = "collecting_details"
	StageDone       Stage = "done"
)

// PendingQuestion is one not-yet-answered follow-up question, paired with
// the symptom it belongs to.
type PendingQuestion struct {
	Symptom  string `json:"symptom"`
	Question string `json:"question"`
}

// QA is one answered follow-up question. Answer keeps the user's original
// casing verbatim.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SymptomDetail groups the answers collected for one symptom.
type SymptomDetail struct {
	Symptom string `json:"symptom"`
	Entries []QA   `json:"entries"`
}

// HealthLog is the accumulated record of one session. Slices instead of maps
// keep its serialization deterministic, so prompts built from it are
// reproducible.
type HealthLog struct {
	InitialSymptoms []string        `json:"initial_symptoms"`
	Details         []SymptomDetail `json:"details"`
}

func (l *HealthLog) record(symptom, question, answer string) {
	for i := range l.Details {
		if l.Details[i].Symptom == symptom {
			l.Details[i].Entries = append(l.Details[i].Entries, QA{Question: question, Answer: answer})
			return
		}
	}

	l.Details = append(l.Details, SymptomDetail{
		Symptom: symptom,
		Entries: []QA{{Question: question, Answer: answer}},
	})
}

// Session is the whole state of one conversation. It is a plain serializable
// value: the state machine is reproducible from this struct alone.
type Session struct {
	Stage   Stage             `json:"stage"`
	Queue   []PendingQuestion `json:"queue,omitempty"`
	Log     HealthLog         `json:"log"`
	Current *PendingQuestion  `json:"current,omitempty"`
}

func NewSession() *Session {
	return &Session{Stage: StageGreeting}
}

// popQuestion takes the next pending question off the queue and makes it the
// current question context. Returns false on an empty queue, leaving the
// context untouched.
func (s *Session) popQuestion() (PendingQuestion, bool) {
	if len(s.Queue) == 0 {
		return PendingQuestion{}, false
	}

	q := s.Queue[0]
	s.Queue = s.Queue[1:]
	s.Current = &q

	return q, true
}

// Style hints how the host should render a reply. The core never renders.
type Style string

const (
	StylePlain   Style = "plain"
	StyleInfo    Style = "info"
	StyleSuccess Style = "success"
	StyleError   Style = "error"
)

// Reply is one outbound message produced by a turn.
type Reply struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

func plain(text string) Reply {
	return Reply{Text: text, Style: StylePlain}
}
