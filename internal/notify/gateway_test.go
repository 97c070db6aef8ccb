package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logue/drop-compress-image/internal/i18n"
	"github.com/logue/drop-compress-image/internal/locale"
)

type fakeChannel struct {
	mu         sync.Mutex
	granted    bool
	answer     Permission
	queryErr   error
	requestErr error
	sendErr    error
	panicOn    string

	requests int
	sent     []Notification
}

func (f *fakeChannel) PermissionGranted(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicOn == "query" {
		panic("host exploded")
	}
	return f.granted, f.queryErr
}

func (f *fakeChannel) RequestPermission(context.Context) (Permission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	if f.requestErr != nil {
		return PermissionUnknown, f.requestErr
	}
	if f.answer == PermissionGranted {
		f.granted = true
	}
	return f.answer, nil
}

func (f *fakeChannel) Send(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicOn == "send" {
		panic("send exploded")
	}
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeChannel) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestNotifyDeliveredWhenGranted(t *testing.T) {
	ch := &fakeChannel{granted: true}
	g := NewGateway(ch)

	res := g.Notify(context.Background(), "Done", "photo.png", "icon.png")

	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.Equal(t, PermissionGranted, res.Permission)
	assert.True(t, res.Delivered())
	assert.NoError(t, res.Err)
	_, err := uuid.Parse(res.ID)
	assert.NoError(t, err)

	require.Len(t, ch.sent, 1)
	assert.Equal(t, Notification{Title: "Done", Body: "photo.png", Icon: "icon.png"}, ch.sent[0])
	assert.Zero(t, ch.requests)
}

func TestNotifyRequestsPermission(t *testing.T) {
	ch := &fakeChannel{answer: PermissionGranted}
	g := NewGateway(ch)

	res := g.Notify(context.Background(), "Done", "body", "")
	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.Equal(t, 1, ch.requests)

	// Granted now, so no second prompt.
	g.Notify(context.Background(), "Done", "body", "")
	assert.Equal(t, 1, ch.requests)
	assert.Equal(t, 2, ch.sentCount())
}

func TestNotifyDeniedPromptsEveryAttempt(t *testing.T) {
	ch := &fakeChannel{answer: PermissionDenied}
	g := NewGateway(ch)

	for i := 0; i < 3; i++ {
		res := g.Notify(context.Background(), "Done", "body", "")
		assert.Equal(t, OutcomeDenied, res.Outcome)
		assert.Equal(t, PermissionDenied, res.Permission)
		assert.NoError(t, res.Err)
	}
	assert.Equal(t, 3, ch.requests)
	assert.Zero(t, ch.sentCount())
}

func TestNotifyDeniedPromptOnce(t *testing.T) {
	ch := &fakeChannel{answer: PermissionDenied}
	g := NewGateway(ch, WithPromptPolicy(PromptOnce))

	for i := 0; i < 3; i++ {
		res := g.Notify(context.Background(), "Done", "body", "")
		assert.Equal(t, OutcomeDenied, res.Outcome)
	}
	assert.Equal(t, 1, ch.requests)
}

func TestNotifyDismissedPromptIsNotRemembered(t *testing.T) {
	ch := &fakeChannel{answer: PermissionUnknown}
	g := NewGateway(ch, WithPromptPolicy(PromptOnce))

	res := g.Notify(context.Background(), "Done", "body", "")
	assert.Equal(t, OutcomeDenied, res.Outcome)
	assert.Equal(t, PermissionUnknown, res.Permission)

	g.Notify(context.Background(), "Done", "body", "")
	assert.Equal(t, 2, ch.requests)
}

func TestNotifyPolicyChangesAtRuntime(t *testing.T) {
	ch := &fakeChannel{answer: PermissionDenied}
	g := NewGateway(ch)
	ctx := context.Background()

	g.SetPromptPolicy(PromptOnce)
	assert.Equal(t, PromptOnce, g.PromptPolicy())
	g.Notify(ctx, "Done", "body", "")
	g.Notify(ctx, "Done", "body", "")
	assert.Equal(t, 1, ch.requests)

	g.ForgetDenial()
	g.Notify(ctx, "Done", "body", "")
	assert.Equal(t, 2, ch.requests)

	g.SetPromptPolicy(PromptEveryAttempt)
	g.Notify(ctx, "Done", "body", "")
	g.Notify(ctx, "Done", "body", "")
	assert.Equal(t, 4, ch.requests)
}

func TestNotifyMessagesChangeAtRuntime(t *testing.T) {
	bundle, err := i18n.LoadEmbedded(nil)
	require.NoError(t, err)

	ch := &fakeChannel{granted: true}
	g := NewGateway(ch, WithMessages(bundle.Translator(locale.English)))
	ctx := context.Background()

	g.NotifyConversionComplete(ctx, "photo.png", "webp")
	g.SetMessages(bundle.Translator(locale.Japanese))
	g.NotifyConversionComplete(ctx, "photo.png", "webp")
	g.SetMessages(nil)
	g.NotifyConversionComplete(ctx, "photo.png", "webp")

	require.Len(t, ch.sent, 3)
	assert.Equal(t, "Conversion complete", ch.sent[0].Title)
	assert.Equal(t, "変換完了", ch.sent[1].Title)
	assert.Equal(t, "photo.png を WEBP に変換しました。", ch.sent[1].Body)
	assert.Equal(t, i18n.KeyCompleteTitle, ch.sent[2].Title)
}

func TestNotifyFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		channel *fakeChannel
	}{
		{"query error", &fakeChannel{queryErr: boom}},
		{"request error", &fakeChannel{requestErr: boom}},
		{"send error", &fakeChannel{granted: true, sendErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewGateway(tt.channel).Notify(context.Background(), "t", "b", "")
			assert.Equal(t, OutcomeFailed, res.Outcome)
			assert.ErrorIs(t, res.Err, boom)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestNotifyRecoversPanics(t *testing.T) {
	for _, where := range []string{"query", "send"} {
		t.Run(where, func(t *testing.T) {
			ch := &fakeChannel{granted: true, panicOn: where}
			var res Result
			assert.NotPanics(t, func() {
				res = NewGateway(ch).Notify(context.Background(), "t", "b", "")
			})
			assert.Equal(t, OutcomeFailed, res.Outcome)
			assert.ErrorContains(t, res.Err, "panicked")
		})
	}
}

func TestNotifyWithoutChannel(t *testing.T) {
	res := NewGateway(nil).Notify(context.Background(), "t", "b", "")
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrNoChannel)
}

func TestNotifyLocalizedHelpers(t *testing.T) {
	bundle, err := i18n.LoadEmbedded(nil)
	require.NoError(t, err)

	ch := &fakeChannel{granted: true}
	g := NewGateway(ch, WithMessages(bundle.Translator(locale.English)))
	ctx := context.Background()

	g.NotifyConversionComplete(ctx, "photo.png", "webp")
	g.NotifyBatchComplete(ctx, 1, "avif")
	g.NotifyBatchComplete(ctx, 3, "avif")
	g.NotifyError(ctx, "unsupported color space")

	require.Len(t, ch.sent, 4)
	assert.Equal(t, "Conversion complete", ch.sent[0].Title)
	assert.Equal(t, "photo.png was converted to WEBP.", ch.sent[0].Body)
	assert.Equal(t, "Batch conversion complete", ch.sent[1].Title)
	assert.Equal(t, "1 image was converted to AVIF.", ch.sent[1].Body)
	assert.Equal(t, "3 images were converted to AVIF.", ch.sent[2].Body)
	assert.Equal(t, "Conversion failed", ch.sent[3].Title)
	assert.Equal(t, "unsupported color space", ch.sent[3].Body)
}

func TestNotifyWithoutMessagesUsesIDs(t *testing.T) {
	ch := &fakeChannel{granted: true}
	NewGateway(ch).NotifyConversionComplete(context.Background(), "a.png", "webp")

	require.Len(t, ch.sent, 1)
	assert.Equal(t, i18n.KeyCompleteTitle, ch.sent[0].Title)
}

func TestParsePromptPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    PromptPolicy
		wantErr bool
	}{
		{"", PromptEveryAttempt, false},
		{"every-attempt", PromptEveryAttempt, false},
		{"once", PromptOnce, false},
		{"never", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePromptPolicy(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestNotifyConcurrentUse(t *testing.T) {
	ch := &fakeChannel{granted: true}
	g := NewGateway(ch)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Notify(context.Background(), "t", "b", "")
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, ch.sentCount())
}
