package widget

import (
	"math/rand"
	"regexp"
	"strings"

	"classboard/internal/classboard/widgetconfig"
)

const (
	MinGroups = 2
	MaxGroups = 10
)

var studentSeparator = regexp.MustCompile(`[,\n]`)

func AddStudent(cfg widgetconfig.GroupMakerConfig, name string) (widgetconfig.GroupMakerConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cfg, ErrInvalidOption
	}
	students := make([]string, 0, len(cfg.Students)+1)
	cfg.Students = append(append(students, cfg.Students...), name)
	return cfg, nil
}

func RemoveStudent(cfg widgetconfig.GroupMakerConfig, index int) (widgetconfig.GroupMakerConfig, error) {
	if index < 0 || index >= len(cfg.Students) {
		return cfg, ErrOutOfRange
	}
	students := make([]string, 0, len(cfg.Students)-1)
	students = append(students, cfg.Students[:index]...)
	cfg.Students = append(students, cfg.Students[index+1:]...)
	return cfg, nil
}

// ImportStudents replaces the roster with the names in text, separated by
// commas or newlines. Blank entries are dropped.
func ImportStudents(cfg widgetconfig.GroupMakerConfig, text string) (widgetconfig.GroupMakerConfig, error) {
	var students []string
	for _, name := range studentSeparator.Split(text, -1) {
		if name = strings.TrimSpace(name); name != "" {
			students = append(students, name)
		}
	}
	if len(students) == 0 {
		return cfg, ErrInvalidOption
	}
	cfg.Students = students
	return cfg, nil
}

func SetGroupCount(cfg widgetconfig.GroupMakerConfig, n int) widgetconfig.GroupMakerConfig {
	cfg.NumberOfGroups = clamp(n, MinGroups, MaxGroups)
	return cfg
}

// MakeGroups shuffles the students and deals them round-robin into
// numberOfGroups groups. Returns nil when there is nobody to group.
func MakeGroups(cfg widgetconfig.GroupMakerConfig, rng *rand.Rand) [][]string {
	if len(cfg.Students) == 0 {
		return nil
	}
	n := clamp(cfg.NumberOfGroups, MinGroups, MaxGroups)
	shuffled := append([]string(nil), cfg.Students...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	groups := make([][]string, n)
	for i := range groups {
		groups[i] = []string{}
	}
	for i, s := range shuffled {
		groups[i%n] = append(groups[i%n], s)
	}
	return groups
}
