package model

type Suggestion struct {
	ID          string `db:"id" json:"id"`
	Week        int    `db:"week" json:"week"`
	Day         int    `db:"day" json:"day"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
}
