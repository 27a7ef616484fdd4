package certificate

import "sort"

// UnknownGroup labels certificates with an empty grouping field.
const UnknownGroup = "Unknown"

// UnknownEmployee labels top users that no longer exist in the directory.
const UnknownEmployee = "Unknown Employee"

const topUsersLimit = 5

type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type UserCount struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Count  int    `json:"certificates"`
}

type Totals struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Started    int `json:"started"`
}

type Aggregation struct {
	ByStatus   []GroupCount `json:"byStatus"`
	ByLevel    []GroupCount `json:"byLevel"`
	ByCategory []GroupCount `json:"byCategory"`
	TopUsers   []UserCount  `json:"topUsers"`
	Totals     Totals       `json:"totals"`
}

// counter keeps counts in first-seen key order.
type counter struct {
	order []string
	index map[string]int
	count []int
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(key string) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.order)
		c.index[key] = i
		c.order = append(c.order, key)
		c.count = append(c.count, 0)
	}
	c.count[i]++
}

func (c *counter) groups() []GroupCount {
	out := make([]GroupCount, len(c.order))
	for i, k := range c.order {
		out[i] = GroupCount{Name: k, Count: c.count[i]}
	}
	return out
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownGroup
	}
	return v
}

// Aggregate groups certificates by exact field value and ranks owners by count.
// Ties in TopUsers keep first-seen order. It never returns nil slices.
func Aggregate(certs []Certificate) Aggregation {
	status := newCounter()
	level := newCounter()
	category := newCounter()
	users := newCounter()
	var totals Totals

	for _, c := range certs {
		status.add(orUnknown(string(c.Status)))
		level.add(orUnknown(c.Level))
		category.add(orUnknown(c.Category))
		users.add(c.UserID.String())

		totals.Total++
		switch c.Status {
		case StatusCompleted:
			totals.Completed++
		case StatusInProgress:
			totals.InProgress++
		case StatusStarted:
			totals.Started++
		}
	}

	ranked := users.groups()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topUsersLimit {
		ranked = ranked[:topUsersLimit]
	}
	top := make([]UserCount, len(ranked))
	for i, g := range ranked {
		top[i] = UserCount{UserID: g.Name, Count: g.Count}
	}

	return Aggregation{
		ByStatus:   status.groups(),
		ByLevel:    level.groups(),
		ByCategory: category.groups(),
		TopUsers:   top,
		Totals:     totals,
	}
}

// CompletionRate is completed/total as a rounded percentage, 0 when total is 0.
func (t Totals) CompletionRate() int {
	if t.Total == 0 {
		return 0
	}
	return (t.Completed*200 + t.Total) / (t.Total * 2)
}
