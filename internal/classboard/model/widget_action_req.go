package model

import "strings"

// PhaseInput describes a lesson phase in add/edit actions.
type PhaseInput struct {
	Name            string `json:"name" validate:"required,max=50"`
	DurationMinutes int    `json:"durationMinutes" validate:"min=1"`
	Color           string `json:"color" validate:"omitempty,max=32"`
}

// TeamInput describes a scoreboard team in add actions.
type TeamInput struct {
	Name  string `json:"name" validate:"required,max=50"`
	Score int    `json:"score" validate:"min=0"`
	Color string `json:"color" validate:"omitempty,max=32"`
}

// WidgetActionReq is the body of POST /widgets/:id/actions. Only the
// fields relevant to Action are read.
type WidgetActionReq struct {
	ID        string      `param:"id" validate:"required"`
	Action    string      `json:"action" validate:"required,oneof=start pause reset adjust add_time jump lap roll make_groups vote reset_poll edit_poll score reset_scores add_team remove_team light add_student remove_student import_students add_phase edit_phase remove_phase font_size align edit_team set_count"`
	Minutes   int         `json:"minutes"`
	Seconds   int         `json:"seconds"`
	Index     int         `json:"index" validate:"min=0"`
	Delta     int         `json:"delta"`
	State     string      `json:"state" validate:"omitempty,oneof=red yellow green"`
	Name      string      `json:"name" validate:"max=50"`
	Text      string      `json:"text"`
	Question  string      `json:"question"`
	Options   []string    `json:"options"`
	Phase     *PhaseInput `json:"phase"`
	Team      *TeamInput  `json:"team"`
	FontSize  int         `json:"fontSize"`
	Alignment string      `json:"alignment" validate:"omitempty,oneof=left center right"`
	Count     int         `json:"count"`
}

func (r *WidgetActionReq) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
	r.Name = strings.TrimSpace(r.Name)
	r.Question = strings.TrimSpace(r.Question)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
