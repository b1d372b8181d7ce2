package workflow

import (
	"context"
	"errors"
	"fmt"

	"social-news-go/pkg/cli/logger"
	"social-news-go/pkg/models"
	"social-news-go/pkg/store"
)

// State of the add-link form.
type State int

const (
	StateIdle State = iota
	StateFormOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFormOpen:
		return "form_open"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrFormNotOpen   = errors.New("link form is not open")
	ErrNotSubmitting = errors.New("no submission in flight")
)

// NewsLister fetches the current news feed.
type NewsLister interface {
	ListNews(ctx context.Context) ([]models.Link, error)
}

// LinkSubmitter posts a new link and returns the record the server stored.
type LinkSubmitter interface {
	SubmitLink(ctx context.Context, link models.Link) (*models.Link, error)
}

// FeedResult describes how the initial feed load went.
type FeedResult struct {
	Offline bool
	Added   int
	Err     error
}

// Outcome describes a settled submission.
type Outcome struct {
	// Link is the entry that was prepended to the store: the server's copy
	// when Confirmed, otherwise the locally entered one.
	Link      models.Link
	Confirmed bool
	Banner    Banner
	Err       error
}

// Workflow owns the link store and the add-link form state. All methods must
// be called from a single goroutine.
type Workflow struct {
	store   *store.LinkStore
	state   State
	offline bool
}

// New returns an idle workflow over s.
func New(s *store.LinkStore) *Workflow {
	if s == nil {
		s = store.NewLinkStore()
	}
	return &Workflow{store: s}
}

func (w *Workflow) Store() *store.LinkStore { return w.store }

func (w *Workflow) State() State { return w.state }

// IsFormOpen reports whether a form is shown, including while it submits.
func (w *Workflow) IsFormOpen() bool { return w.state != StateIdle }

// Offline reports whether the feed fell back to placeholder links.
func (w *Workflow) Offline() bool { return w.offline }

// ApplyFeed records the result of the initial feed fetch. On error, or if
// any record fails validation, the store is seeded with the fallback links
// instead and the workflow enters offline mode.
func (w *Workflow) ApplyFeed(records []models.Link, err error) FeedResult {
	links := make([]models.Link, 0, len(records))
	if err == nil {
		for i, r := range records {
			link, verr := models.NewLink(r.Title, r.URL, r.Author)
			if verr != nil {
				err = fmt.Errorf("feed record %d: %w", i, verr)
				break
			}
			links = append(links, link)
		}
	}

	if err != nil {
		logger.LogError(err, "news feed unavailable, entering offline mode")
		w.offline = true
		fallback := FallbackLinks()
		for _, link := range fallback {
			w.store.Add(link)
		}
		return FeedResult{Offline: true, Added: len(fallback), Err: err}
	}

	logger.Info("news feed loaded: %d link(s)", len(links))
	for _, link := range links {
		w.store.Add(link)
	}
	return FeedResult{Added: len(links)}
}

// OpenForm shows the add-link form. It is a no-op returning false when a
// form is already open or submitting.
func (w *Workflow) OpenForm() bool {
	if w.state != StateIdle {
		return false
	}
	w.state = StateFormOpen
	return true
}

// CancelForm closes an open form that has not been submitted.
func (w *Workflow) CancelForm() bool {
	if w.state != StateFormOpen {
		return false
	}
	w.state = StateIdle
	return true
}

// BeginSubmit validates the form values and moves to Submitting. The
// returned link is the locally entered candidate; pass it to Settle.
func (w *Workflow) BeginSubmit(title, url, author string) (models.Link, error) {
	if w.state != StateFormOpen {
		return models.Link{}, ErrFormNotOpen
	}

	link, err := models.NewLink(title, url, author)
	if err != nil {
		return models.Link{}, err
	}

	w.state = StateSubmitting
	return link, nil
}

// Settle applies the result of the submit request started by BeginSubmit.
// Either way a link is prepended to the store and the form closes.
func (w *Workflow) Settle(local models.Link, echoed *models.Link, err error) (Outcome, error) {
	if w.state != StateSubmitting {
		return Outcome{}, ErrNotSubmitting
	}
	w.state = StateIdle

	if err == nil && echoed == nil {
		err = errors.New("empty response from server")
	}

	var canonical models.Link
	if err == nil {
		canonical, err = models.NewLink(echoed.Title, echoed.URL, echoed.Author)
		if err != nil {
			err = fmt.Errorf("server returned an invalid link: %w", err)
		}
	}

	if err != nil {
		logger.LogError(err, "failed to submit link %q, keeping local copy", local.Title)
		w.store.AddToTop(local)
		return Outcome{
			Link:   local,
			Banner: failureBanner(local.Title),
			Err:    err,
		}, nil
	}

	logger.Info("link submitted: %s", canonical)
	w.store.AddToTop(canonical)
	return Outcome{
		Link:      canonical,
		Confirmed: true,
		Banner:    successBanner(local.Title),
	}, nil
}

// Bootstrap fetches the feed and applies it. It blocks until the request
// completes.
func (w *Workflow) Bootstrap(ctx context.Context, api NewsLister) FeedResult {
	records, err := api.ListNews(ctx)
	return w.ApplyFeed(records, err)
}

// Submit runs a whole open-submit-settle cycle synchronously. The returned
// error is only set when the form could not be opened or the values were
// rejected; transport failures are reported through Outcome.Err.
func (w *Workflow) Submit(ctx context.Context, api LinkSubmitter, title, url, author string) (Outcome, error) {
	if !w.OpenForm() {
		return Outcome{}, fmt.Errorf("a submission is already in progress")
	}

	local, err := w.BeginSubmit(title, url, author)
	if err != nil {
		w.CancelForm()
		return Outcome{}, err
	}

	echoed, err := api.SubmitLink(ctx, local)
	return w.Settle(local, echoed, err)
}
