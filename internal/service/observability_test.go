package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-plan",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"status": "final", "semesters": 6},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=generate-plan")
	assert.Contains(t, out, "duration_ms=12")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("semesters=6")), bytes.Index(buf.Bytes(), []byte("status=final")))
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "choose", Err: errors.New("boom")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}

func TestLogUseCaseObserver_InputErrorsLogAsWarnings(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "create-student",
		Err:  &domain.ValidationError{Field: "current_year", Message: "must be between 1 and 4"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "generate-plan", Err: repository.ErrNotFound})

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("level=WARN")))
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestUseCaseObserverOrNoop_FansOutToEveryObserver(t *testing.T) {
	first, second := &recordingObserver{}, &recordingObserver{}
	obs := useCaseObserverOrNoop([]UseCaseObserver{nil, first, second})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import-roster", Success: true})

	require.Len(t, first.named("import-roster"), 1)
	require.Len(t, second.named("import-roster"), 1)
	assert.Same(t, first, useCaseObserverOrNoop([]UseCaseObserver{first}))
}
