package registry

import (
	"context"
	"testing"

	"meditrack/app/service/catalog"
	"meditrack/app/service/intake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct{}

func (stubAdvisor) Summarize(context.Context, intake.HealthLog) (string, error) {
	return "summary text", nil
}

func (stubAdvisor) Advise(context.Context, []string) (string, error) {
	return "advice text", nil
}

func newTestRegistry() *Service {
	return NewService(intake.NewService(catalog.Default(), stubAdvisor{}))
}

func TestCreate(t *testing.T) {
	svc := newTestRegistry()

	id, greeting := svc.Create()

	assert.Equal(t, RoleAssistant, greeting.Role)
	assert.Equal(t, intake.GreetingMessage, greeting.Text)

	stage, err := svc.Stage(id)
	require.NoError(t, err)
	assert.Equal(t, intake.StageGreeting, stage)

	transcript, err := svc.Transcript(id)
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, intake.GreetingMessage, transcript[0].Text)
}

func TestHandleTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("appends both sides of the exchange to the transcript", func(t *testing.T) {
		svc := newTestRegistry()
		id, _ := svc.Create()

		messages, err := svc.HandleTurn(ctx, id, "I have a headache")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, RoleAssistant, messages[0].Role)

		transcript, err := svc.Transcript(id)
		require.NoError(t, err)
		require.Len(t, transcript, 3)
		assert.Equal(t, RoleUser, transcript[1].Role)
		assert.Equal(t, "I have a headache", transcript[1].Text)
		assert.Equal(t, messages[0].Text, transcript[2].Text)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := newTestRegistry()

		_, err := svc.HandleTurn(ctx, uuid.New(), "hello")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("sessions do not share state", func(t *testing.T) {
		svc := newTestRegistry()
		first, _ := svc.Create()
		second, _ := svc.Create()

		_, err := svc.HandleTurn(ctx, first, "I have a fever")
		require.NoError(t, err)

		stage, err := svc.Stage(second)
		require.NoError(t, err)
		assert.Equal(t, intake.StageGreeting, stage)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("wipes stage, queue progress and transcript", func(t *testing.T) {
		svc := newTestRegistry()
		id, _ := svc.Create()

		_, err := svc.HandleTurn(ctx, id, "I have a headache")
		require.NoError(t, err)

		stage, err := svc.Stage(id)
		require.NoError(t, err)
		require.Equal(t, intake.StageCollecting, stage)

		greeting, err := svc.Reset(id)
		require.NoError(t, err)
		assert.Equal(t, intake.GreetingMessage, greeting.Text)

		stage, err = svc.Stage(id)
		require.NoError(t, err)
		assert.Equal(t, intake.StageGreeting, stage)

		transcript, err := svc.Transcript(id)
		require.NoError(t, err)
		require.Len(t, transcript, 1)
		assert.Equal(t, intake.GreetingMessage, transcript[0].Text)
	})

	t.Run("revives a session frozen by escalation", func(t *testing.T) {
		svc := newTestRegistry()
		id, _ := svc.Create()

		_, err := svc.HandleTurn(ctx, id, "sudden chest pain")
		require.NoError(t, err)

		stage, err := svc.Stage(id)
		require.NoError(t, err)
		require.Equal(t, intake.StageDone, stage)

		_, err = svc.Reset(id)
		require.NoError(t, err)

		messages, err := svc.HandleTurn(ctx, id, "I have a cough")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Is it a dry cough, or are you coughing anything up?", messages[0].Text)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := newTestRegistry()

		_, err := svc.Reset(uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
