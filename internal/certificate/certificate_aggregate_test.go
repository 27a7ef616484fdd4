package certificate

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func certFor(user uuid.UUID, status Status, level string) Certificate {
	return Certificate{ID: uuid.New(), UserID: user, Status: status, Level: level}
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil)

	assert.Empty(t, agg.ByStatus)
	assert.Empty(t, agg.ByLevel)
	assert.NotNil(t, agg.TopUsers)
	assert.Empty(t, agg.TopUsers)
	assert.Equal(t, Totals{}, agg.Totals)
	assert.Equal(t, 0, agg.Totals.CompletionRate())
}

func TestAggregate_GroupsWithUnknown(t *testing.T) {
	u := uuid.New()
	agg := Aggregate([]Certificate{
		certFor(u, StatusCompleted, "Beginner"),
		certFor(u, "", "beginner"),
		certFor(u, StatusCompleted, ""),
	})

	assert.Equal(t, []GroupCount{
		{Name: "completed", Count: 2},
		{Name: UnknownGroup, Count: 1},
	}, agg.ByStatus)
	// grouping is case-sensitive
	assert.Equal(t, []GroupCount{
		{Name: "Beginner", Count: 1},
		{Name: "beginner", Count: 1},
		{Name: UnknownGroup, Count: 1},
	}, agg.ByLevel)
	assert.Equal(t, []GroupCount{{Name: UnknownGroup, Count: 3}}, agg.ByCategory)
	assert.Equal(t, Totals{Total: 3, Completed: 2}, agg.Totals)
}

func countsOf(groups []GroupCount) map[string]int {
	out := make(map[string]int, len(groups))
	for _, g := range groups {
		out[g.Name] = g.Count
	}
	return out
}

func TestAggregate_OrderIndependentCounts(t *testing.T) {
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	var certs []Certificate
	for i := 0; i < 30; i++ {
		statuses := []Status{StatusStarted, StatusInProgress, StatusCompleted, ""}
		levels := []string{"Advanced", "Intermediate", ""}
		certs = append(certs, certFor(users[i%3], statuses[i%4], levels[i%3]))
	}
	// give the users distinct counts so the ranking is unambiguous
	certs = append(certs, certFor(users[0], StatusOther, "Advanced"), certFor(users[0], StatusOther, "Advanced"), certFor(users[1], StatusOther, ""))

	base := Aggregate(certs)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]Certificate, len(certs))
		copy(shuffled, certs)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled)
		assert.Equal(t, countsOf(base.ByStatus), countsOf(got.ByStatus))
		assert.Equal(t, countsOf(base.ByLevel), countsOf(got.ByLevel))
		assert.Equal(t, base.TopUsers, got.TopUsers)
		assert.Equal(t, base.Totals, got.Totals)
	}
}

func TestAggregate_TopUsers(t *testing.T) {
	ids := make([]uuid.UUID, 7)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var certs []Certificate
	add := func(u uuid.UUID, n int) {
		for i := 0; i < n; i++ {
			certs = append(certs, certFor(u, StatusStarted, ""))
		}
	}
	add(ids[0], 1)
	add(ids[1], 3)
	add(ids[2], 2)
	add(ids[3], 2)
	add(ids[4], 5)
	add(ids[5], 1)
	add(ids[6], 2)

	top := Aggregate(certs).TopUsers

	assert.Len(t, top, 5)
	want := []UserCount{
		{UserID: ids[4].String(), Count: 5},
		{UserID: ids[1].String(), Count: 3},
		{UserID: ids[2].String(), Count: 2},
		{UserID: ids[3].String(), Count: 2},
		{UserID: ids[6].String(), Count: 2},
	}
	assert.Equal(t, want, top)
}

func TestTotals_CompletionRate(t *testing.T) {
	assert.Equal(t, 33, Totals{Total: 3, Completed: 1}.CompletionRate())
	assert.Equal(t, 67, Totals{Total: 3, Completed: 2}.CompletionRate())
	assert.Equal(t, 50, Totals{Total: 2, Completed: 1}.CompletionRate())
	assert.Equal(t, 100, Totals{Total: 4, Completed: 4}.CompletionRate())
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]Status{
		"":            "",
		"started":     StatusStarted,
		"In Progress": StatusInProgress,
		"in-progress": StatusInProgress,
		"IN_PROGRESS": StatusInProgress,
		" Completed ": StatusCompleted,
		"OTHER":       StatusOther,
	}
	for in, want := range cases {
		got, ok := NormalizeStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := NormalizeStatus("finished")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-03-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-01", formatDate(d))

	d, err = parseDate("2024-03-01T10:30:00+07:00")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-01", formatDate(d))

	d, err = parseDate("  ")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = parseDate("01/03/2024")
	assert.Error(t, err)
}
