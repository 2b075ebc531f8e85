package intake

import (
	"context"
	"log/slog"
	"strings"

	"meditrack/app/service/catalog"
	"meditrack/app/service/triage"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

// SummaryAdvisor is the external text-generation capability invoked once per
// session, at the terminal transition. Both calls are single blocking calls
// with no retry; any failure is absorbed here and never escapes a turn.
type SummaryAdvisor interface {
	// Summarize produces a markdown bullet-point recap of exactly the data
	// in the log, without diagnosis or invented information.
	Summarize(ctx context.Context, log HealthLog) (string, error)
	// Advise produces generic non-prescriptive wellness guidance from the
	// initially detected symptoms only.
	Advise(ctx context.Context, symptoms []string) (string, error)
}

// Service drives the turn-by-turn conversation. It holds no per-session
// state: Advance is a reducer over (*Session, input text) -> replies, so one
// Service instance serves any number of independent sessions.
type Service struct {
	catalog *catalog.Catalog
	advisor SummaryAdvisor
}

func New(di *do.Injector) (*Service, error) {
	return NewService(catalog.Default(), do.MustInvoke[SummaryAdvisor](di)), nil
}

func NewService(cat *catalog.Catalog, advisor SummaryAdvisor) *Service {
	return &Service{
		catalog: cat,
		advisor: advisor,
	}
}

// Advance processes one inbound user message and mutates sess accordingly.
// The safety scan always runs first, regardless of stage: a critical keyword
// ends the session on the spot and nothing else is processed that turn.
// Advance never fails; every per-turn error is resolved into a fixed reply.
func (s *Service) Advance(ctx context.Context, sess *Session, text string) []Reply {
	if triage.Scan(text) {
		sess.Stage = StageDone
		sess.Queue = nil
		sess.Current = nil

		slog.Warn("Critical symptom reported, session frozen", "telegram", true)

		return []Reply{{Text: triage.EscalationResponse, Style: StyleError}}
	}

	switch sess.Stage {
	case StageGreeting:
		return s.advanceGreeting(sess, text)
	case StageCollecting:
		return s.advanceCollecting(ctx, sess, text)
	default:
		return []Reply{plain(concludedMessage)}
	}
}

func (s *Service) advanceGreeting(sess *Session, text string) []Reply {
	detected := s.catalog.Detect(text)
	sess.Log.InitialSymptoms = detected

	for _, name := range detected {
		for _, question := range s.catalog.Questions(name) {
			sess.Queue = append(sess.Queue, PendingQuestion{Symptom: name, Question: question})
		}
	}

	next, ok := sess.popQuestion()
	if !ok {
		// Nothing recognized: the turn is consumed, but the stage stays
		// at greeting until a known symptom shows up.
		return []Reply{plain(clarificationMessage)}
	}

	sess.Stage = StageCollecting

	slog.Info("Symptoms detected",
		"symptoms", detected,
		"questions", len(sess.Queue)+1)

	return []Reply{plain(next.Question)}
}

func (s *Service) advanceCollecting(ctx context.Context, sess *Session, text string) []Reply {
	if sess.Current != nil {
		sess.Log.record(sess.Current.Symptom, sess.Current.Question, text)
	} else {
		// An answer with no question awaiting it. Should not happen, but
		// must not fail: skip the log step.
		slog.Debug("Answer received without a pending question, skipping")
	}

	if next, ok := sess.popQuestion(); ok {
		return []Reply{plain(next.Question)}
	}

	return s.finish(ctx, sess)
}

// finish is the transient summary stage: both advisor calls happen within
// this turn and the session parks at done. The calls run concurrently, but
// the summary section is always emitted before the advice section.
func (s *Service) finish(ctx context.Context, sess *Session) []Reply {
	var summaryText, adviceText string

	var g errgroup.Group

	g.Go(func() error {
		summaryText = s.generateSummary(ctx, sess.Log)
		return nil
	})
	g.Go(func() error {
		adviceText = s.generateAdvice(ctx, sess.Log.InitialSymptoms)
		return nil
	})

	_ = g.Wait()

	sess.Stage = StageDone

	return []Reply{
		plain(summaryHeader),
		{Text: summaryText, Style: StyleInfo},
		plain(adviceHeader),
		{Text: adviceText, Style: StyleSuccess},
		plain(closingMessage),
	}
}

func (s *Service) generateSummary(ctx context.Context, log HealthLog) string {
	out, err := s.advisor.Summarize(ctx, log)
	if err != nil {
		slog.Error("Summary generation failed", "error", err)
		return providerErrorFallback
	}

	if strings.TrimSpace(out) == "" {
		return emptyOutputFallback
	}

	return out
}

func (s *Service) generateAdvice(ctx context.Context, symptoms []string) string {
	out, err := s.advisor.Advise(ctx, symptoms)
	if err != nil {
		slog.Error("Advice generation failed", "error", err)
		return providerErrorFallback
	}

	if strings.TrimSpace(out) == "" {
		return emptyOutputFallback
	}

	return out
}
