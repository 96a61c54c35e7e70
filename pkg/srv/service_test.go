package srv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name     string
	events   *[]string
	startErr error
}

func (r *recorder) Start(ctx context.Context) error {
	*r.events = append(*r.events, "start "+r.name)
	return r.startErr
}

func (r *recorder) Shutdown(ctx context.Context) error {
	*r.events = append(*r.events, "stop "+r.name)
	return nil
}

func TestRun_StartsInOrderAndStopsInReverse(t *testing.T) {
	var events []string
	err := Run(context.Background(),
		&recorder{name: "console", events: &events},
		&recorder{name: "session", events: &events},
	)

	assert.NoError(t, err)
	assert.Equal(t, []string{"start console", "start session", "stop session", "stop console"}, events)
}

func TestRun_StartErrorStillShutsDown(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	err := Run(context.Background(),
		&recorder{name: "a", events: &events, startErr: boom},
		&recorder{name: "b", events: &events},
	)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start a", "stop b", "stop a"}, events)
}

func TestNewCleanup(t *testing.T) {
	called := 0
	svc := NewCleanup(func() error {
		called++
		return nil
	})

	assert.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, 0, called)
	assert.NoError(t, svc.Shutdown(context.Background()))
	assert.Equal(t, 1, called)

	assert.NoError(t, NewCleanup(nil).Shutdown(context.Background()))
}

func TestNewCleanup_RunsOnce(t *testing.T) {
	called := 0
	svc := NewCleanup(func() error {
		called++
		return nil
	})

	ShutdownServices(context.Background(), []Service{svc, svc})
	assert.Equal(t, 1, called)
}
