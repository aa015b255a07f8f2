package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	breaker *CircuitBreaker
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    50 * time.Millisecond,
		HalfOpenMaxSucc: 2,
	}).(*CircuitBreaker)
}

func (s *CircuitBreakerTestSuite) tripBreaker() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.False(s.breaker.IsOpen())
	s.Equal(StateClosed, s.breaker.GetState())
	s.Zero(s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCountWhileClosed() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()

	s.Zero(s.breaker.GetFailureCount())
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.tripBreaker()
	s.True(s.breaker.IsOpen())

	time.Sleep(60 * time.Millisecond)

	// The probe call transitions to half-open and is allowed through
	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterEnoughSuccesses() {
	s.tripBreaker()
	time.Sleep(60 * time.Millisecond)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordSuccess()
	s.Equal(StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())
	s.Zero(s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenReopensOnFailure() {
	s.tripBreaker()
	time.Sleep(60 * time.Millisecond)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestResetForcesClosed() {
	s.tripBreaker()
	s.True(s.breaker.IsOpen())

	s.breaker.Reset()

	s.False(s.breaker.IsOpen())
	s.Equal(StateClosed, s.breaker.GetState())
	s.Zero(s.breaker.GetFailureCount())
}
