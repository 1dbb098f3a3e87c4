package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/application"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
)

const (
	// FeedLength is the number of lines one live monitoring run emits.
	FeedLength = 5
	// DefaultFeedInterval separates consecutive feed lines.
	DefaultFeedInterval = time.Second
)

// ErrFeedExhausted is returned by Next once all lines were emitted.
var ErrFeedExhausted = errors.New("live feed exhausted")

// Feed is a finite, non-restartable sequence of feed lines. The first line is
// available immediately; each later one is preceded by the interval wait.
// A Feed is owned by a single consumer.
type Feed struct {
	ID       string
	clock    application.Clock
	delay    application.Delayer
	interval time.Duration
	metrics  *metrics.Registry
	emitted  int
}

// Next blocks for the interval (except before the first line) and returns
// the next line. A cancelled wait does not consume a line.
func (f *Feed) Next(ctx context.Context) (domain.FeedLine, error) {
	if f.emitted >= FeedLength {
		return domain.FeedLine{}, ErrFeedExhausted
	}
	if f.emitted > 0 {
		if err := f.delay.Wait(ctx, f.interval); err != nil {
			return domain.FeedLine{}, err
		}
	} else if err := ctx.Err(); err != nil {
		return domain.FeedLine{}, err
	}

	f.emitted++
	now := f.clock.Now()
	if f.metrics != nil {
		f.metrics.RecordFeedLine()
	}
	return domain.FeedLine{
		Sector: f.emitted,
		Time:   now,
		Text:   domain.FormatFeedLine(now, f.emitted),
	}, nil
}

// Remaining is the number of lines not yet emitted.
func (f *Feed) Remaining() int {
	return FeedLength - f.emitted
}

// Done reports whether the feed is exhausted.
func (f *Feed) Done() bool {
	return f.emitted >= FeedLength
}

// Drain consumes what is left, stopping at the first error.
func (f *Feed) Drain(ctx context.Context) ([]domain.FeedLine, error) {
	out := make([]domain.FeedLine, 0, f.Remaining())
	for !f.Done() {
		line, err := f.Next(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, line)
	}
	return out, nil
}
