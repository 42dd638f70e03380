package widget

import (
	"math"
	"strings"

	"classboard/internal/classboard/widgetconfig"
)

// Tally counts votes for the options of a poll. Votes are session state
// and are never persisted.
type Tally struct {
	votes       []int
	showResults bool
}

type OptionResult struct {
	Option  string `json:"option"`
	Votes   int    `json:"votes"`
	Percent int    `json:"percent"`
}

type PollResults struct {
	Question    string         `json:"question"`
	TotalVotes  int            `json:"totalVotes"`
	ShowResults bool           `json:"showResults"`
	Options     []OptionResult `json:"options"`
}

func NewTally(options int) *Tally {
	return &Tally{votes: make([]int, options)}
}

// Sync resets the tally if the number of options changed.
func (t *Tally) Sync(options int) {
	if len(t.votes) != options {
		t.votes = make([]int, options)
		t.showResults = false
	}
}

func (t *Tally) Vote(index int) error {
	if index < 0 || index >= len(t.votes) {
		return ErrOutOfRange
	}
	t.votes[index]++
	t.showResults = true
	return nil
}

func (t *Tally) Reset() {
	t.votes = make([]int, len(t.votes))
	t.showResults = false
}

func (t *Tally) Total() int {
	total := 0
	for _, v := range t.votes {
		total += v
	}
	return total
}

// Results pairs the tally with the poll options. Percentages are rounded
// to whole numbers.
func (t *Tally) Results(cfg widgetconfig.PollConfig) PollResults {
	total := t.Total()
	res := PollResults{Question: cfg.Question, TotalVotes: total, ShowResults: t.showResults}
	for i, opt := range cfg.Options {
		r := OptionResult{Option: opt}
		if i < len(t.votes) {
			r.Votes = t.votes[i]
		}
		if total > 0 {
			r.Percent = int(math.Round(float64(r.Votes) / float64(total) * 100))
		}
		res.Options = append(res.Options, r)
	}
	return res
}

// EditPoll builds a new poll configuration. The question must not be blank
// and at least two non-blank options are required.
func EditPoll(question string, options []string) (widgetconfig.PollConfig, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return widgetconfig.PollConfig{}, ErrInvalidOption
	}
	var opts []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	if len(opts) < 2 {
		return widgetconfig.PollConfig{}, ErrInvalidOption
	}
	return widgetconfig.PollConfig{Question: question, Options: opts}, nil
}
