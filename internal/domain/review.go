package domain

type Review struct {
	ID         string `db:"id" json:"id"`
	Rate       int    `db:"rate" json:"rate"`
	Text       string `db:"text" json:"text,omitempty"`
	CreateDate Date   `db:"create_date" json:"createDate"`
	TeacherID  string `db:"teacher_id" json:"teacherId"`
}
