package domain

type Teacher struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Surname      string `db:"surname" json:"surname"`
	Patronymic   string `db:"patronymic" json:"patronymic,omitempty"`
	UniversityID string `db:"university_id" json:"universityId"`
}
