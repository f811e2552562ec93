// Package lookup drives a single video retrieval through its lifecycle.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/log"
)

// Phase is the stage of the current attempt.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name. Unknown names decode as Idle.
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "loading":
		*p = Loading
	case "success":
		*p = Success
	case "failure":
		*p = Failure
	default:
		*p = Idle
	}
	return nil
}

var (
	ErrMissingIdentifier = errors.New("missing identifier")
	ErrNotFound          = errors.New("not found or unavailable")
	ErrRetrieval         = errors.New("retrieval failed")
)

// Retriever fetches the catalog items for an identifier.
type Retriever interface {
	Fetch(ctx context.Context, id string) ([]catalog.Video, error)
}

// State is a snapshot of the controller.
// Record is set only in Success. Reason and Err are set only in Failure.
type State struct {
	Phase  Phase
	Record mo.Option[*catalog.Video]
	Reason string
	Err    error
}

// Controller owns the lifecycle state. It is not safe for concurrent use:
// all calls must come from the goroutine that owns it.
type Controller struct {
	retriever Retriever
	state     State
	attempt   string
	id        string
}

// New creates an idle Controller.
func New(retriever Retriever) *Controller {
	return &Controller{retriever: retriever}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Loading reports whether an attempt is in flight.
func (c *Controller) Loading() bool {
	return c.state.Phase == Loading
}

// Submit runs a full attempt for id and returns the resulting state.
// It is ignored while another attempt is loading.
func (c *Controller) Submit(ctx context.Context, id string) State {
	if !c.Begin(id) {
		return c.state
	}

	items, err := c.retriever.Fetch(ctx, strings.TrimSpace(id))
	return c.Finish(items, err)
}

// Begin starts an attempt and reports whether the caller should retrieve.
// A blank id fails immediately and never enters Loading.
func (c *Controller) Begin(id string) bool {
	if c.Loading() {
		log.Warnf("ignoring submit of %q while loading %q", id, c.id)
		return false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		c.fail(ErrMissingIdentifier, ErrMissingIdentifier)
		return false
	}

	c.id = id
	c.attempt = uuid.NewString()
	c.state = State{Phase: Loading, Record: mo.None[*catalog.Video]()}
	c.entry().Info("fetching")
	return true
}

// Finish completes the in-flight attempt with the retriever result.
// It is ignored unless an attempt is loading.
func (c *Controller) Finish(items []catalog.Video, err error) State {
	if !c.Loading() {
		return c.state
	}

	switch {
	case err != nil:
		c.entry().WithError(err).Error("retrieval failed")
		c.fail(ErrRetrieval, fmt.Errorf("%w: %w", ErrRetrieval, err))
	case len(items) == 0:
		c.entry().Warn("no items returned")
		c.fail(ErrNotFound, ErrNotFound)
	default:
		record := items[0]
		c.entry().WithField("items", len(items)).Info("fetched")
		c.state = State{Phase: Success, Record: mo.Some(&record)}
	}

	return c.state
}

func (c *Controller) fail(reason, err error) {
	c.state = State{
		Phase:  Failure,
		Record: mo.None[*catalog.Video](),
		Reason: reason.Error(),
		Err:    err,
	}
}

func (c *Controller) entry() *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"attempt": c.attempt,
		"id":      c.id,
	})
}
