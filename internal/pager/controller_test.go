package pager_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"atlas/internal/dataset"
	"atlas/internal/domain"
	"atlas/internal/pager"
)

func makeDataset(n int) []domain.Country {
	countries := make([]domain.Country, n)
	for i := range countries {
		countries[i] = domain.Country{
			Name:    fmt.Sprintf("Country %d", i+1),
			Region:  "Testland",
			Code:    fmt.Sprintf("C%d", i+1),
			Capital: fmt.Sprintf("City %d", i+1),
		}
	}
	return countries
}

func newLoadedController(t *testing.T, n int) (*pager.Controller, []domain.Country) {
	t.Helper()

	store := dataset.NewStore()
	countries := makeDataset(n)
	require.True(t, store.Load(countries))

	c := pager.NewController(store)
	c.OnDataReady()
	return c, countries
}

func TestFirstPageOnDataReady(t *testing.T) {
	t.Parallel()

	c, countries := newLoadedController(t, 45)

	require.Equal(t, 20, c.VisibleCount())
	require.True(t, c.HasMore())
	require.Equal(t, pager.ModeBrowse, c.Mode())
	require.Equal(t, countries[0], c.VisibleAt(0))
	require.Equal(t, countries[19], c.VisibleAt(19))
}

func TestOnDataReadyIdempotent(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 45)
	c.OnDataReady()

	require.Equal(t, 20, c.VisibleCount())
	require.Equal(t, 1, c.PagesLoaded())
}

func TestNearEndScenario(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 45)

	c.OnNearEnd(19)
	require.Equal(t, 40, c.VisibleCount())
	require.True(t, c.HasMore())

	c.OnNearEnd(39)
	require.Equal(t, 45, c.VisibleCount())
	require.False(t, c.HasMore())

	// Further near-end calls change nothing
	c.OnNearEnd(44)
	require.Equal(t, 45, c.VisibleCount())
	require.False(t, c.HasMore())
}

func TestNearEndIgnoresNonLastIndex(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 45)

	c.OnNearEnd(0)
	c.OnNearEnd(5)
	c.OnNearEnd(18)
	require.Equal(t, 20, c.VisibleCount())
}

func TestPaginationCoverage(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 19, 20, 21, 40, 45, 53, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			c, countries := newLoadedController(t, n)

			for c.HasMore() {
				c.OnNearEnd(c.VisibleCount() - 1)
			}

			wantPages := (n + pager.PageSize - 1) / pager.PageSize
			require.Equal(t, wantPages, c.PagesLoaded())
			require.Equal(t, n, c.VisibleCount())

			// Order-preserving, duplicate-free: the visible sequence is
			// exactly the dataset.
			for i := range countries {
				require.Equal(t, countries[i], c.VisibleAt(i))
			}
		})
	}
}

func TestVisiblePrefixAfterEachPage(t *testing.T) {
	t.Parallel()

	c, countries := newLoadedController(t, 53)

	for page := 1; c.HasMore(); page++ {
		count := c.VisibleCount()
		require.Equal(t, min(page*pager.PageSize, 53), count)
		for i := 0; i < count; i++ {
			require.Equal(t, countries[i], c.VisibleAt(i))
		}
		c.LoadNextPage()
	}
}

func TestQuerySwitchesToSearchMode(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 45)

	c.OnQueryChanged("country 4")
	require.Equal(t, pager.ModeSearch, c.Mode())
	require.Equal(t, "country 4", c.Query())

	// "Country 4" and "Country 40" through "Country 45"
	require.Equal(t, 7, c.VisibleCount())
	require.Equal(t, "Country 4", c.VisibleAt(0).Name)
	require.Equal(t, "Country 40", c.VisibleAt(1).Name)
}

func TestClearQueryRestartsBrowseAtPageOne(t *testing.T) {
	t.Parallel()

	c, countries := newLoadedController(t, 45)

	// Scroll deep into the list, then search, then clear
	c.OnNearEnd(19)
	c.OnNearEnd(39)
	require.Equal(t, 45, c.VisibleCount())

	c.OnQueryChanged("country 1")
	require.Equal(t, pager.ModeSearch, c.Mode())

	c.OnQueryChanged("")
	require.Equal(t, pager.ModeBrowse, c.Mode())
	require.Equal(t, 20, c.VisibleCount())
	require.Equal(t, 1, c.PagesLoaded())
	require.True(t, c.HasMore())
	require.Equal(t, countries[0], c.VisibleAt(0))
}

func TestClearQuerySmallDataset(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 12)

	c.OnQueryChanged("country")
	c.OnQueryChanged("")

	require.Equal(t, 12, c.VisibleCount())
	require.False(t, c.HasMore())
}

func TestNearEndNoOpInSearchMode(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 45)

	c.OnQueryChanged("country")
	count := c.VisibleCount()

	c.OnNearEnd(count - 1)
	require.Equal(t, count, c.VisibleCount())
	require.Equal(t, 1, c.PagesLoaded())
}

func TestQueryRecomputedOnChange(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 45)

	c.OnQueryChanged("country 11")
	require.Equal(t, 1, c.VisibleCount())

	c.OnQueryChanged("country 1")
	// "Country 1", "Country 10" through "Country 19"
	require.Equal(t, 11, c.VisibleCount())
}

func TestVisibleAtOutOfBoundsPanics(t *testing.T) {
	t.Parallel()

	c, _ := newLoadedController(t, 5)

	require.Panics(t, func() { c.VisibleAt(-1) })
	require.Panics(t, func() { c.VisibleAt(5) })
	require.NotPanics(t, func() { c.VisibleAt(4) })
}

func TestEmptyStoreHasNoPages(t *testing.T) {
	t.Parallel()

	store := dataset.NewStore()
	c := pager.NewController(store)

	c.LoadNextPage()
	require.Equal(t, 0, c.VisibleCount())
	require.False(t, c.HasMore())
}

func TestDataReadyAfterQueryCycle(t *testing.T) {
	t.Parallel()

	// A query typed and cleared before the dataset arrives must not
	// wedge the controller.
	store := dataset.NewStore()
	c := pager.NewController(store)

	c.OnQueryChanged("x")
	c.OnQueryChanged("")
	require.Equal(t, 0, c.VisibleCount())

	require.True(t, store.Load(makeDataset(30)))
	c.OnDataReady()
	require.Equal(t, 20, c.VisibleCount())
	require.True(t, c.HasMore())
}

func TestWindowClamps(t *testing.T) {
	t.Parallel()

	c, countries := newLoadedController(t, 25)

	window := c.Window(5, 10)
	require.Equal(t, countries[5:10], window)

	require.Equal(t, countries[15:20], c.Window(15, 99))
	require.Nil(t, c.Window(30, 40))
	require.Equal(t, countries[0:3], c.Window(-2, 3))
}
