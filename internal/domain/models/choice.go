package models

type Choice struct {
	ID         int64  `json:"id,omitempty"`
	QuestionID int64  `json:"question_id" validate:"required"`
	ChoiceText string `json:"choice_text" validate:"required,max=200"`
	Votes      int    `json:"votes"`
}

func (c Choice) String() string {
	return c.ChoiceText
}
