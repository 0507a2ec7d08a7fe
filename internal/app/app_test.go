package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/drivahub/drivahub/internal/config"
	"github.com/drivahub/drivahub/internal/events"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestNewPublisher_LogsWithoutBroker() {
	publisher, err := newPublisher(&config.Config{})

	s.Require().NoError(err)
	s.IsType(&events.LogPublisher{}, publisher)
}

func (s *ApplicationSuite) TestNewPublisher_BadURL() {
	_, err := newPublisher(&config.Config{AMQPURL: "not-a-url", AMQPExchange: "drivahub.events"})

	s.Error(err)
}

func (s *ApplicationSuite) TestRelease() {
	ctrl := gomock.NewController(s.T())
	publisher := events.NewMockPublisher(ctrl)
	publisher.EXPECT().Close().Return(errors.New("channel closed"))

	s.app.publisher = publisher
	s.NotPanics(s.app.release)
}
