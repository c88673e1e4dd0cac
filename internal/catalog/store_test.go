package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/nefes/internal/catalog"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCategories = []domain.Category{"Nefes", "Isınma", "Güçlendirme"}

func newStore(t *testing.T, cfg catalog.SimulatorConfig) *catalog.Store {
	t.Helper()
	if cfg.Corpus == nil {
		cfg.Corpus = sampleCorpus()
	}
	sim, err := catalog.NewSimulator(cfg)
	require.NoError(t, err)
	store := catalog.NewStore(sim, testCategories, nil)
	t.Cleanup(store.Close)
	return store
}

func TestStoreInitialState(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{})

	assert.Equal(t, domain.CatalogIdle, store.State().Status)
	assert.Equal(t, domain.CategoryAll, store.Filter())
	assert.Nil(t, store.DerivedView())
	assert.Equal(t, testCategories, store.Categories())
}

func TestStoreLoadReady(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{FailureProbability: 0})
	rec := &recorder{}
	store.Subscribe(rec.listen)

	require.True(t, store.Load())
	store.Wait()

	st := store.State()
	assert.Equal(t, domain.CatalogReady, st.Status)
	assert.NoError(t, st.Err)
	assert.Equal(t, ids(sampleCorpus()), ids(st.Entries))
	assert.Equal(t, []domain.CatalogStatus{domain.CatalogLoading, domain.CatalogReady}, rec.statuses())
}

func TestStoreLoadFailed(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{FailureProbability: 1})

	for i := 0; i < 5; i++ {
		require.True(t, store.Load())
		store.Wait()

		st := store.State()
		assert.Equal(t, domain.CatalogFailed, st.Status)
		assert.ErrorIs(t, st.Err, domain.ErrTransientLoad)
		assert.Nil(t, st.Entries)
		assert.Nil(t, store.DerivedView(), "failed state yields no entries regardless of filter")
	}
}

func TestStoreDuplicateLoadIsDropped(t *testing.T) {
	clock := &manualClock{}
	store := newStore(t, catalog.SimulatorConfig{Delay: time.Second, Clock: clock})
	rec := &recorder{}
	store.Subscribe(rec.listen)

	require.True(t, store.Load())
	assert.False(t, store.Load(), "second load while loading must be dropped")
	assert.False(t, store.Retry())

	require.Eventually(t, func() bool { return clock.count() == 1 }, time.Second, time.Millisecond)
	clock.fire()
	store.Wait()

	assert.Equal(t, 1, clock.count(), "only one timer may be started")
	assert.Equal(t, []domain.CatalogStatus{domain.CatalogLoading, domain.CatalogReady}, rec.statuses())
}

func TestStoreRetryFromFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	rnd := mocks.NewMockRandomSource(ctrl)
	gomock.InOrder(
		rnd.EXPECT().Float64().Return(0.05),
		rnd.EXPECT().Float64().Return(0.95),
	)

	store := newStore(t, catalog.SimulatorConfig{FailureProbability: 0.2, Random: rnd})
	rec := &recorder{}
	store.Subscribe(rec.listen)

	require.True(t, store.Load())
	store.Wait()
	require.Equal(t, domain.CatalogFailed, store.State().Status)

	require.True(t, store.Retry())
	store.Wait()
	assert.Equal(t, domain.CatalogReady, store.State().Status)

	assert.Equal(t, []domain.CatalogStatus{
		domain.CatalogLoading, domain.CatalogFailed,
		domain.CatalogLoading, domain.CatalogReady,
	}, rec.statuses())
}

func TestStoreRetryFromReadyReloads(t *testing.T) {
	clock := &manualClock{}
	store := newStore(t, catalog.SimulatorConfig{Delay: time.Second, Clock: clock})
	require.True(t, store.Load())
	require.Eventually(t, func() bool { return clock.count() == 1 }, time.Second, time.Millisecond)
	clock.fire()
	store.Wait()

	store.SetFilter("Isınma")
	require.True(t, store.Retry())
	assert.Equal(t, domain.CatalogLoading, store.State().Status)
	assert.Nil(t, store.DerivedView())

	require.Eventually(t, func() bool { return clock.count() == 2 }, time.Second, time.Millisecond)
	clock.fire()
	store.Wait()

	assert.Equal(t, domain.CatalogReady, store.State().Status)
	assert.Equal(t, domain.Category("Isınma"), store.Filter(), "reload must not reset the filter")
	assert.Equal(t, []string{"3", "4"}, ids(store.DerivedView()))
}

func TestStoreCloseCancelsPendingLoad(t *testing.T) {
	clock := &manualClock{}
	store := newStore(t, catalog.SimulatorConfig{Delay: time.Second, Clock: clock})
	rec := &recorder{}
	store.Subscribe(rec.listen)

	require.True(t, store.Load())
	require.Eventually(t, func() bool { return clock.count() == 1 }, time.Second, time.Millisecond)
	eventsBefore := rec.len()

	store.Close()
	clock.fire()
	store.Wait()

	assert.Equal(t, eventsBefore, rec.len(), "no transition may be applied after teardown")
	assert.Equal(t, domain.CatalogLoading, store.State().Status)
	assert.False(t, store.Load(), "closed store ignores loads")
	assert.Equal(t, 1, clock.count())
}

func TestStoreFilterScenario(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{})
	require.True(t, store.Load())
	store.Wait()

	store.SetFilter("Isınma")
	assert.Equal(t, []string{"3", "4"}, ids(store.DerivedView()))

	store.SetFilter(domain.CategoryAll)
	assert.Len(t, store.DerivedView(), 5)

	store.SetFilter("Güçlendirme")
	view := store.DerivedView()
	assert.NotNil(t, view)
	assert.Empty(t, view)
}

func TestStoreSetFilterNotifies(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{})
	rec := &recorder{}
	unsubscribe := store.Subscribe(rec.listen)

	store.SetFilter("Nefes")
	store.SetFilter("Nefes") // unchanged, no event
	require.Equal(t, 1, rec.len())
	assert.Equal(t, catalog.EventFilter, rec.events[0].Kind)
	assert.Equal(t, domain.Category("Nefes"), rec.events[0].Filter)

	unsubscribe()
	unsubscribe()
	store.SetFilter("Isınma")
	assert.Equal(t, 1, rec.len(), "unsubscribed listener must not be called")
}

func TestStoreListenerMayReadState(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{})
	seen := make(chan domain.CatalogStatus, 4)
	store.Subscribe(func(ev catalog.Event) {
		seen <- store.State().Status
	})

	require.True(t, store.Load())
	store.Wait()

	assert.Equal(t, domain.CatalogLoading, <-seen)
	assert.Equal(t, domain.CatalogReady, <-seen)
}

func TestStoreStateSnapshotIsCopy(t *testing.T) {
	store := newStore(t, catalog.SimulatorConfig{})
	require.True(t, store.Load())
	store.Wait()

	st := store.State()
	st.Entries[0].Title = "changed"
	assert.Equal(t, "Nefes Egzersizi I (Oturarak)", store.State().Entries[0].Title)
}

type errLoader struct{ err error }

func (l errLoader) Fetch(context.Context) ([]domain.Exercise, error) { return nil, l.err }

func TestStoreWrapsUnexpectedLoaderErrors(t *testing.T) {
	store := catalog.NewStore(errLoader{err: errors.New("boom")}, testCategories, nil)
	defer store.Close()

	require.True(t, store.Load())
	store.Wait()

	st := store.State()
	assert.Equal(t, domain.CatalogFailed, st.Status)
	assert.ErrorIs(t, st.Err, domain.ErrTransientLoad)
}
