package usecase

import (
	"context"
	"errors"
	"strings"

	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/metrics"
)

// Start resets the conversation to the greeting. Known identity is kept.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (intake.Output, error) {
	key, err := sessionKey(sc)
	if err != nil {
		return intake.Output{}, err
	}
	unlock := uc.locks.Lock(key)
	defer unlock()

	rec, err := uc.load(ctx, key)
	if err != nil {
		return intake.Output{}, err
	}

	tr := greeting(rec.Session)
	if err := uc.save(ctx, key, tr); err != nil {
		return intake.Output{}, err
	}
	uc.countTurn(sc, tr.next)
	return newOutput(tr), nil
}

// Handle advances the conversation by one message.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input intake.HandleInput) (intake.Output, error) {
	key, err := sessionKey(sc)
	if err != nil {
		return intake.Output{}, err
	}
	unlock := uc.locks.Lock(key)
	defer unlock()

	rec, err := uc.load(ctx, key)
	if err != nil {
		return intake.Output{}, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		msg, opts := uc.engine.prompt(rec.State)
		return intake.Output{
			State:   rec.State.Kind(),
			Step:    intake.StepOf(rec.State),
			Message: msg,
			Options: opts,
		}, intake.ErrEmptyInput
	}

	tr := uc.engine.advance(rec.State, rec.Session, text)

	// The finished state is stored before the pipeline runs, so a failed save can
	// never lead to the same request being submitted twice.
	if err := uc.save(ctx, key, tr); err != nil {
		return intake.Output{}, err
	}
	uc.countTurn(sc, tr.next)

	out := newOutput(tr)
	if tr.submission != nil {
		out = uc.submit(ctx, sc, *tr.submission, out)
	}
	return out, nil
}

// Reset forgets the conversation and the identity collected so far.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	key, err := sessionKey(sc)
	if err != nil {
		return err
	}
	unlock := uc.locks.Lock(key)
	defer unlock()

	if err := uc.repo.Delete(ctx, key); err != nil {
		uc.l.Errorf(ctx, "uc.Reset Delete: %v", err)
		return intake.ErrStoreUnavailable
	}
	return nil
}

// Snapshot returns the stored conversation without changing it.
func (uc *implUseCase) Snapshot(ctx context.Context, sc model.Scope) (intake.Conversation, error) {
	key, err := sessionKey(sc)
	if err != nil {
		return intake.Conversation{}, err
	}

	rec, found, err := uc.repo.Get(ctx, key)
	if errors.Is(err, intake.ErrCorruptState) {
		return intake.Conversation{}, intake.ErrSessionNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Snapshot Get: %v", err)
		return intake.Conversation{}, intake.ErrStoreUnavailable
	}
	if !found {
		return intake.Conversation{}, intake.ErrSessionNotFound
	}

	conv := intake.Conversation{
		SessionID: sc.SessionID,
		State:     rec.State.Kind(),
		Step:      intake.StepOf(rec.State),
		Session:   rec.Session,
	}
	if m, ok := rec.State.(intake.Maintenance); ok {
		draft := m.Draft
		conv.Draft = &draft
	}
	return conv, nil
}

// load returns the stored record, or a fresh Welcome record for unknown sessions.
// A corrupt record is discarded and the conversation starts over.
func (uc *implUseCase) load(ctx context.Context, key string) (intake.Record, error) {
	rec, found, err := uc.repo.Get(ctx, key)
	if errors.Is(err, intake.ErrCorruptState) {
		uc.l.Warnf(ctx, "uc.load: discarding corrupt session %s: %v", key, err)
		return intake.Record{State: intake.Welcome{}}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.load Get: %v", err)
		return intake.Record{}, intake.ErrStoreUnavailable
	}
	if !found || rec.State == nil {
		return intake.Record{State: intake.Welcome{}, Session: rec.Session}, nil
	}
	return rec, nil
}

func (uc *implUseCase) save(ctx context.Context, key string, tr transition) error {
	if err := uc.repo.Save(ctx, key, intake.Record{State: tr.next, Session: tr.session}); err != nil {
		uc.l.Errorf(ctx, "uc.save Save: %v", err)
		return intake.ErrStoreUnavailable
	}
	return nil
}

func (uc *implUseCase) countTurn(sc model.Scope, next intake.State) {
	metrics.ConversationTurns.WithLabelValues(string(sc.Channel), string(next.Kind())).Inc()
}

func sessionKey(sc model.Scope) (string, error) {
	if sc.TenantID == "" || sc.SessionID == "" {
		return "", intake.ErrMissingSession
	}
	return sc.TenantID + ":" + sc.SessionID, nil
}

func newOutput(tr transition) intake.Output {
	return intake.Output{
		State:   tr.next.Kind(),
		Step:    intake.StepOf(tr.next),
		Message: tr.message,
		Options: tr.options,
	}
}
