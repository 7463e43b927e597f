package domain

type University struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Abbreviation string `db:"abbreviation" json:"abbreviation"`
	CityID       string `db:"city_id" json:"cityId"`
}
