package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/umbrella-ledger/internal/jobs/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	matches   *mocks.MockMatchStarter
	hook      *logtest.Hook
	scheduler *Scheduler
	now       time.Time
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.matches = mocks.NewMockMatchStarter(s.ctrl)

	var l *logrus.Logger
	l, s.hook = logtest.NewNullLogger()
	s.scheduler = New(s.matches, "@every 1s", l)
	s.now = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	s.scheduler.now = func() time.Time { return s.now }
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SchedulerTestSuite) TestSweep() {
	s.matches.EXPECT().MarkStartedLive(gomock.Any(), s.now).Return(int64(3), nil)

	s.scheduler.sweep(s.T().Context())
	s.Equal("matches moved to live", s.hook.LastEntry().Message)
}

func (s *SchedulerTestSuite) TestSweep_Error() {
	s.matches.EXPECT().MarkStartedLive(gomock.Any(), s.now).Return(int64(0), errors.New("db is gone"))

	s.scheduler.sweep(s.T().Context())
	s.Equal(logrus.ErrorLevel, s.hook.LastEntry().Level)
}

func (s *SchedulerTestSuite) TestRun_InvalidSpec() {
	s.scheduler.spec = "every now and then"
	s.Require().Error(s.scheduler.Run(s.T().Context()))
}

func (s *SchedulerTestSuite) TestRun_SweepsUntilCancelled() {
	ctx, cancel := context.WithCancel(s.T().Context())
	swept := make(chan struct{}, 1)

	s.matches.EXPECT().
		MarkStartedLive(gomock.Any(), s.now).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	done := make(chan error, 1)
	go func() { done <- s.scheduler.Run(ctx) }()

	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		s.Fail("sweeper did not run")
	}
	cancel()
	s.Require().NoError(<-done)
}
