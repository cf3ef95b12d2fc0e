package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"nutriplan/internal/cache"
	"nutriplan/internal/catalog"
	"nutriplan/internal/engine"
	"nutriplan/internal/model"
	"nutriplan/internal/repository"
)

// StepView is what the renderer sees after every processed event: the
// current question or resolved follow-ups, validity, progress, and the
// advance control's label.
type StepView struct {
	SessionID     string                    `json:"sessionId"`
	Phase         model.Phase               `json:"phase"`
	Cursor        model.StepCursor          `json:"cursor"`
	TotalSteps    int                       `json:"totalSteps"`
	Question      *model.BaseQuestion       `json:"question,omitempty"`
	QuestionFound bool                      `json:"questionFound"`
	FollowUps     []model.FollowUpQuestion  `json:"followUps,omitempty"`
	Valid         bool                      `json:"valid"`
	Progress      float64                   `json:"progress"`
	ButtonLabel   string                    `json:"buttonLabel"`
}

// CompletionView is handed out once a session reaches the terminal state
type CompletionView struct {
	SessionID     string          `json:"sessionId"`
	Answers       model.AnswerSet `json:"answers"`
	BMI           float64         `json:"bmi,omitempty"`
	SleepDuration string          `json:"sleepDuration,omitempty"`
	CompletedAt   time.Time       `json:"completedAt"`
}

// SessionService runs intake sessions: every external stimulus is one
// discrete event, processed fully (answer update, follow-up recomputation,
// validation, exposure) before the next one is accepted for that session.
type SessionService struct {
	sessions    cache.SessionCache
	intakes     repository.IntakeRepo
	nav         *engine.Navigator
	broadcaster Broadcaster

	locks sync.Map // sessionID -> *sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(sessions cache.SessionCache, intakes repository.IntakeRepo, nav *engine.Navigator) *SessionService {
	return &SessionService{
		sessions: sessions,
		intakes:  intakes,
		nav:      nav,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// lockSession serializes events per session
func (s *SessionService) lockSession(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Create starts a new session at step 1 with an empty answer set
func (s *SessionService) Create(ctx context.Context) (*StepView, error) {
	st := s.nav.NewState()
	now := time.Now()
	session := &model.Session{
		ID:        "s_" + uuid.New().String()[:8],
		Answers:   st.Answers,
		Cursor:    st.Cursor,
		Phase:     st.Phase,
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.view(session), nil
}

// State returns the current view of a session
func (s *SessionService) State(ctx context.Context, sessionID string) (*StepView, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// SetAnswer records a base answer and re-derives follow-ups and validity
func (s *SessionService) SetAnswer(ctx context.Context, sessionID, key string, v model.Value) (*StepView, error) {
	return s.apply(ctx, sessionID, func(st engine.State) engine.State {
		st.Answers = st.Answers.WithBase(key, v)
		return st
	})
}

// ToggleOption flips one option of a base multiselect answer
func (s *SessionService) ToggleOption(ctx context.Context, sessionID, key, optionID string) (*StepView, error) {
	return s.apply(ctx, sessionID, func(st engine.State) engine.State {
		exclusive := s.exclusiveIDsForBase(st, key)
		st.Answers = st.Answers.ToggleBaseOption(key, optionID, exclusive)
		return st
	})
}

// SetFollowUp records a follow-up answer
func (s *SessionService) SetFollowUp(ctx context.Context, sessionID, subKey string, v model.Value) (*StepView, error) {
	return s.apply(ctx, sessionID, func(st engine.State) engine.State {
		st.Answers = st.Answers.WithFollowUp(subKey, v)
		return st
	})
}

// ToggleFollowUp flips one option of a follow-up multiselect answer
func (s *SessionService) ToggleFollowUp(ctx context.Context, sessionID, subKey, optionID string) (*StepView, error) {
	return s.apply(ctx, sessionID, func(st engine.State) engine.State {
		exclusive := s.exclusiveIDsForFollowUp(st, subKey)
		st.Answers = st.Answers.ToggleFollowUpOption(subKey, optionID, exclusive)
		return st
	})
}

// Next advances the session; on reaching the terminal state the answer set
// is finalized and archived.
func (s *SessionService) Next(ctx context.Context, sessionID string) (*StepView, error) {
	return s.transition(ctx, sessionID, s.nav.Next)
}

// Back retreats the session cursor
func (s *SessionService) Back(ctx context.Context, sessionID string) (*StepView, error) {
	return s.transition(ctx, sessionID, s.nav.Back)
}

// Skip advances like Next; the distinction is presentational only
func (s *SessionService) Skip(ctx context.Context, sessionID string) (*StepView, error) {
	return s.transition(ctx, sessionID, s.nav.Skip)
}

// RecentIntakes lists the latest archived intake records, newest first
func (s *SessionService) RecentIntakes(ctx context.Context, limit int64) ([]*model.IntakeRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records, err := s.intakes.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list intakes: %w", err)
	}
	return records, nil
}

// Completion returns the finalized outcome of a completed session
func (s *SessionService) Completion(ctx context.Context, sessionID string) (*CompletionView, error) {
	record, err := s.intakes.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return &CompletionView{
		SessionID:     record.SessionID,
		Answers:       record.Answers,
		BMI:           record.BMI,
		SleepDuration: record.SleepDuration,
		CompletedAt:   record.CompletedAt,
	}, nil
}

func (s *SessionService) getSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}
	return session, nil
}

// apply processes one answer-change event: mutate, self-heal, persist, expose
func (s *SessionService) apply(ctx context.Context, sessionID string, update func(engine.State) engine.State) (*StepView, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase == model.PhaseComplete {
		// Finalized answer sets are read-only
		return s.view(session), nil
	}

	st := stateOf(session)
	st = update(st)
	st = s.nav.Normalize(st)

	return s.commit(ctx, session, st)
}

// transition processes one navigation event
func (s *SessionService) transition(ctx context.Context, sessionID string, move func(engine.State) engine.State) (*StepView, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase == model.PhaseComplete {
		return s.view(session), nil
	}

	st := move(stateOf(session))
	return s.commit(ctx, session, st)
}

func (s *SessionService) commit(ctx context.Context, session *model.Session, st engine.State) (*StepView, error) {
	completedNow := session.Phase != model.PhaseComplete && st.Phase == model.PhaseComplete

	session.Answers = st.Answers
	session.Cursor = st.Cursor
	session.Phase = st.Phase
	session.UpdatedAt = time.Now()
	if completedNow {
		now := session.UpdatedAt
		session.CompletedAt = &now
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	view := s.view(session)

	if completedNow {
		completion := s.finalize(ctx, session)
		if s.broadcaster != nil {
			s.broadcaster.BroadcastToSession(session.ID, "completed", completion)
		}
	} else if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(session.ID, "state_update", view)
	}

	return view, nil
}

// finalize archives the read-only answer set with its derived summary
func (s *SessionService) finalize(ctx context.Context, session *model.Session) *CompletionView {
	completion := &CompletionView{
		SessionID:   session.ID,
		Answers:     session.Answers,
		CompletedAt: *session.CompletedAt,
	}
	if bmi, ok := engine.BMI(session.Answers.GetMeasurements(catalog.KeyMeasurements)); ok {
		completion.BMI = bmi
	}
	if dur, ok := engine.SleepDuration(session.Answers.GetSleep(catalog.KeySleepSchedule)); ok {
		completion.SleepDuration = dur
	}

	record := &model.IntakeRecord{
		SessionID:     session.ID,
		Answers:       session.Answers,
		BMI:           completion.BMI,
		SleepDuration: completion.SleepDuration,
		CompletedAt:   completion.CompletedAt,
	}
	if _, err := s.intakes.Create(ctx, record); err != nil {
		// Archiving is downstream; the session itself completed fine
		log.Printf("failed to archive intake for %s: %v", session.ID, err)
	}
	return completion
}

func (s *SessionService) view(session *model.Session) *StepView {
	st := stateOf(session)
	view := &StepView{
		SessionID:   session.ID,
		Phase:       session.Phase,
		Cursor:      session.Cursor,
		TotalSteps:  len(s.nav.Questions(st)),
		Valid:       s.nav.Valid(st),
		Progress:    s.nav.Progress(st),
		ButtonLabel: s.nav.ButtonLabel(st),
	}
	if q, ok := s.nav.Current(st); ok {
		view.Question = &q
		view.QuestionFound = true
	}
	if session.Phase == model.PhaseAnsweringFollowUps {
		view.FollowUps = engine.Displayable(s.nav.FollowUps(st))
	}
	return view
}

func (s *SessionService) exclusiveIDsForBase(st engine.State, key string) []string {
	for _, q := range s.nav.Questions(st) {
		if q.Key == key {
			return model.ExclusiveIDs(q.Options)
		}
	}
	return nil
}

func (s *SessionService) exclusiveIDsForFollowUp(st engine.State, subKey string) []string {
	for _, fu := range s.nav.FollowUps(st) {
		if fu.SubKey == subKey {
			return model.ExclusiveIDs(fu.Options)
		}
	}
	return nil
}

func stateOf(session *model.Session) engine.State {
	answers := session.Answers
	if answers.Base == nil {
		answers.Base = map[string]model.Value{}
	}
	if answers.FollowUps == nil {
		answers.FollowUps = map[string]model.Value{}
	}
	return engine.State{
		Answers: answers,
		Cursor:  session.Cursor,
		Phase:   session.Phase,
	}
}
