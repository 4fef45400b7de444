// Package course holds the fixed 6-week curriculum: 42 daily exercises plus
// week-level metadata. The data is defined once at init and never mutated;
// consumers receive it through the Catalog, which the app constructs at
// startup and injects wherever curriculum lookups are needed.
package course

type Exercise struct {
	Week        int
	Day         int
	Title       string
	Description string
	Category    string
}

type WeekInfo struct {
	Week        int    `json:"week"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
}

type Catalog struct {
	exercises []Exercise
	weeks     []WeekInfo
	byWeekDay map[int]Exercise
}

func NewCatalog() *Catalog {
	c := &Catalog{
		exercises: exercises,
		weeks:     weeks,
		byWeekDay: make(map[int]Exercise, len(exercises)),
	}
	for _, e := range exercises {
		c.byWeekDay[key(e.Week, e.Day)] = e
	}
	return c
}

// Exercises returns the full curriculum ordered by (week, day).
func (c *Catalog) Exercises() []Exercise {
	out := make([]Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// ByWeekDay returns the exercise at (week, day), or false when the pair is
// outside the curriculum grid.
func (c *Catalog) ByWeekDay(week, day int) (Exercise, bool) {
	e, ok := c.byWeekDay[key(week, day)]
	return e, ok
}

// Week returns the metadata for one course week, or false when out of range.
func (c *Catalog) Week(week int) (WeekInfo, bool) {
	if week < 1 || week > len(c.weeks) {
		return WeekInfo{}, false
	}
	return c.weeks[week-1], true
}

func key(week, day int) int {
	return week*10 + day
}
