package widget

import (
	"strings"

	"classboard/internal/classboard/widgetconfig"
)

const DefaultTeamColor = "#3b82f6"

func copyTeams(teams []widgetconfig.Team) []widgetconfig.Team {
	return append(make([]widgetconfig.Team, 0, len(teams)), teams...)
}

// ChangeScore adds delta to the score of team index. Scores never go
// below zero.
func ChangeScore(cfg widgetconfig.ScoreboardConfig, index, delta int) (widgetconfig.ScoreboardConfig, error) {
	if index < 0 || index >= len(cfg.Teams) {
		return cfg, ErrOutOfRange
	}
	teams := copyTeams(cfg.Teams)
	teams[index].Score = max(0, teams[index].Score+delta)
	cfg.Teams = teams
	return cfg, nil
}

func AddTeam(cfg widgetconfig.ScoreboardConfig, team widgetconfig.Team) (widgetconfig.ScoreboardConfig, error) {
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return cfg, ErrInvalidOption
	}
	if team.Color == "" {
		team.Color = DefaultTeamColor
	}
	team.Score = max(0, team.Score)
	cfg.Teams = append(copyTeams(cfg.Teams), team)
	return cfg, nil
}

// EditTeam renames or recolors team index. The score is kept.
func EditTeam(cfg widgetconfig.ScoreboardConfig, index int, team widgetconfig.Team) (widgetconfig.ScoreboardConfig, error) {
	if index < 0 || index >= len(cfg.Teams) {
		return cfg, ErrOutOfRange
	}
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return cfg, ErrInvalidOption
	}
	teams := copyTeams(cfg.Teams)
	teams[index].Name = team.Name
	if team.Color != "" {
		teams[index].Color = team.Color
	}
	cfg.Teams = teams
	return cfg, nil
}

func RemoveTeam(cfg widgetconfig.ScoreboardConfig, index int) (widgetconfig.ScoreboardConfig, error) {
	if index < 0 || index >= len(cfg.Teams) {
		return cfg, ErrOutOfRange
	}
	teams := make([]widgetconfig.Team, 0, len(cfg.Teams)-1)
	teams = append(teams, cfg.Teams[:index]...)
	cfg.Teams = append(teams, cfg.Teams[index+1:]...)
	return cfg, nil
}

func ResetScores(cfg widgetconfig.ScoreboardConfig) widgetconfig.ScoreboardConfig {
	teams := copyTeams(cfg.Teams)
	for i := range teams {
		teams[i].Score = 0
	}
	cfg.Teams = teams
	return cfg
}
