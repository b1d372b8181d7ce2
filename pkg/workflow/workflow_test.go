package workflow

import (
	"context"
	"errors"
	"testing"

	"social-news-go/pkg/models"
	"social-news-go/pkg/store"
)

type fakeAPI struct {
	news      []models.Link
	newsErr   error
	echo      *models.Link
	submitErr error
	submitted []models.Link
}

func (f *fakeAPI) ListNews(ctx context.Context) ([]models.Link, error) {
	return f.news, f.newsErr
}

func (f *fakeAPI) SubmitLink(ctx context.Context, link models.Link) (*models.Link, error) {
	f.submitted = append(f.submitted, link)
	return f.echo, f.submitErr
}

func TestBootstrap_Online(t *testing.T) {
	api := &fakeAPI{news: []models.Link{
		{Title: "Go", URL: "https://go.dev", Author: "gopher"},
		{Title: "Lobsters", URL: "https://lobste.rs", Author: "crab"},
		{Title: "LWN", URL: "https://lwn.net", Author: "penguin"},
	}}
	w := New(store.NewLinkStore())

	res := w.Bootstrap(context.Background(), api)
	if res.Offline || res.Err != nil {
		t.Fatalf("result = %+v, want online", res)
	}
	if w.Offline() {
		t.Error("workflow reports offline after successful fetch")
	}
	got := w.Store().Links()
	if len(got) != len(api.news) {
		t.Fatalf("store has %d links, want %d", len(got), len(api.news))
	}
	for i := range api.news {
		if got[i] != api.news[i] {
			t.Errorf("link %d = %+v, want %+v", i, got[i], api.news[i])
		}
	}
}

func TestBootstrap_OfflineFallback(t *testing.T) {
	api := &fakeAPI{newsErr: errors.New("dial tcp: connection refused")}
	w := New(store.NewLinkStore())

	res := w.Bootstrap(context.Background(), api)
	if !res.Offline || res.Err == nil {
		t.Fatalf("result = %+v, want offline with error", res)
	}
	if !w.Offline() {
		t.Error("workflow not offline after failed fetch")
	}

	want := []string{"Wikipedia", "Hacker News", "Reddit", "Boing Boing"}
	got := w.Store().Links()
	if len(got) != len(want) {
		t.Fatalf("store has %d links, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("link %d title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestApplyFeed_InvalidRecordFallsBack(t *testing.T) {
	w := New(nil)
	res := w.ApplyFeed([]models.Link{
		{Title: "ok", URL: "https://ok.example", Author: "a"},
		{Title: "", URL: "https://broken.example", Author: "b"},
	}, nil)

	if !res.Offline {
		t.Fatal("expected offline mode for an invalid record")
	}
	if w.Store().Len() != len(FallbackLinks()) {
		t.Errorf("store has %d links, want only the fallback set", w.Store().Len())
	}
}

func TestOpenForm_Idempotent(t *testing.T) {
	w := New(nil)
	if !w.OpenForm() {
		t.Fatal("first OpenForm returned false")
	}
	if w.OpenForm() {
		t.Error("second OpenForm should be a no-op")
	}
	if w.State() != StateFormOpen || !w.IsFormOpen() {
		t.Errorf("state = %s, want form_open", w.State())
	}
}

func TestBeginSubmit_RequiresOpenForm(t *testing.T) {
	w := New(nil)
	if _, err := w.BeginSubmit("T", "U", "A"); !errors.Is(err, ErrFormNotOpen) {
		t.Errorf("err = %v, want ErrFormNotOpen", err)
	}
}

func TestBeginSubmit_ValidationKeepsFormOpen(t *testing.T) {
	w := New(nil)
	w.OpenForm()
	if _, err := w.BeginSubmit("", "U", "A"); err == nil {
		t.Fatal("expected validation error")
	}
	if w.State() != StateFormOpen {
		t.Errorf("state = %s, want form_open", w.State())
	}
}

func TestSubmit_Success(t *testing.T) {
	api := &fakeAPI{echo: &models.Link{Title: "T", URL: "U", Author: "A"}}
	w := New(nil)
	w.Store().Add(models.Link{Title: "old", URL: "https://old.example", Author: "o"})

	out, err := w.Submit(context.Background(), api, "T", "U", "A")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Confirmed || out.Err != nil {
		t.Fatalf("outcome = %+v, want confirmed", out)
	}
	want := models.Link{Title: "T", URL: "U", Author: "A"}
	if first := w.Store().Links()[0]; first != want {
		t.Errorf("first link = %+v, want %+v", first, want)
	}
	if out.Banner.Kind != BannerSuccess || out.Banner.TTL != SuccessBannerTTL {
		t.Errorf("banner = %+v, want success with %v TTL", out.Banner, SuccessBannerTTL)
	}
	if out.Banner.Text != "Success! The link 'T' has been successfully added!" {
		t.Errorf("banner text = %q", out.Banner.Text)
	}
	if w.IsFormOpen() {
		t.Error("form still open after success")
	}
	if len(api.submitted) != 1 || api.submitted[0] != want {
		t.Errorf("submitted = %+v", api.submitted)
	}
}

func TestSubmit_UsesServerCopy(t *testing.T) {
	api := &fakeAPI{echo: &models.Link{Title: "Canonical", URL: "https://canonical.example", Author: "server"}}
	w := New(nil)

	out, err := w.Submit(context.Background(), api, "local", "https://local.example", "me")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := w.Store().Links()[0]; got != *api.echo {
		t.Errorf("first link = %+v, want server copy %+v", got, *api.echo)
	}
	if out.Banner.Text != "Success! The link 'local' has been successfully added!" {
		t.Errorf("banner text = %q, want the locally entered title", out.Banner.Text)
	}
}

func TestSubmit_FailureInsertsLocalCopy(t *testing.T) {
	api := &fakeAPI{submitErr: errors.New("dial tcp: no such host")}
	w := New(nil)
	w.Store().Add(models.Link{Title: "old", URL: "https://old.example", Author: "o"})

	out, err := w.Submit(context.Background(), api, "T", "U", "A")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Confirmed || out.Err == nil {
		t.Fatalf("outcome = %+v, want unconfirmed with error", out)
	}
	want := models.Link{Title: "T", URL: "U", Author: "A"}
	if first := w.Store().Links()[0]; first != want {
		t.Errorf("first link = %+v, want %+v", first, want)
	}
	if w.Store().Len() != 2 {
		t.Errorf("store len = %d, want 2", w.Store().Len())
	}
	if out.Banner.Kind != BannerFailure || out.Banner.TTL != FailureBannerTTL {
		t.Errorf("banner = %+v, want failure with %v TTL", out.Banner, FailureBannerTTL)
	}
	if w.IsFormOpen() {
		t.Error("form still open after failure")
	}
}

func TestSettle_InvalidEchoIsFailure(t *testing.T) {
	w := New(nil)
	w.OpenForm()
	local, err := w.BeginSubmit("T", "U", "A")
	if err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}

	out, err := w.Settle(local, &models.Link{}, nil)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if out.Confirmed || out.Link != local {
		t.Errorf("outcome = %+v, want local copy kept", out)
	}
}

func TestSettle_RequiresSubmission(t *testing.T) {
	w := New(nil)
	if _, err := w.Settle(models.Link{}, nil, nil); !errors.Is(err, ErrNotSubmitting) {
		t.Errorf("err = %v, want ErrNotSubmitting", err)
	}
}

func TestCancelForm(t *testing.T) {
	w := New(nil)
	if w.CancelForm() {
		t.Error("CancelForm on idle workflow returned true")
	}
	w.OpenForm()
	if !w.CancelForm() || w.IsFormOpen() {
		t.Error("CancelForm did not close the form")
	}

	w.OpenForm()
	if _, err := w.BeginSubmit("T", "U", "A"); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	if w.CancelForm() {
		t.Error("CancelForm must not interrupt a submission")
	}
}

func TestSubmit_RejectsInvalidInput(t *testing.T) {
	api := &fakeAPI{}
	w := New(nil)
	if _, err := w.Submit(context.Background(), api, "T", "", "A"); err == nil {
		t.Fatal("expected validation error")
	}
	if len(api.submitted) != 0 {
		t.Error("invalid link was sent to the server")
	}
	if w.IsFormOpen() {
		t.Error("form left open after rejected input")
	}
}
