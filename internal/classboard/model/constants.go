package model

// Widget types
const (
	WidgetCountdown    = "countdown"
	WidgetTrafficLight = "trafficLight"
	WidgetSoundMeter   = "soundMeter"
	WidgetLessonPhases = "lessonPhases"
	WidgetScoreboard   = "scoreboard"
	WidgetGroupMaker   = "groupMaker"
	WidgetDice         = "dice"
	WidgetStopwatch    = "stopwatch"
	WidgetText         = "text"
	WidgetPoll         = "poll"
)

// Sounds understood by the audio player
const (
	SoundTimerEnd    = "timerEnd"
	SoundClick       = "click"
	SoundAlert       = "alert"
	SoundSuccess     = "success"
	SoundRedLight    = "redLight"
	SoundYellowLight = "yellowLight"
	SoundGreenLight  = "greenLight"
)

// Default placement of freshly created widgets. Fixed so repeated adds stack.
const (
	DefaultWidgetX = 50
	DefaultWidgetY = 50
)

// Widget actions accepted by POST /widgets/:id/actions
const (
	ActionStart          = "start"
	ActionPause          = "pause"
	ActionReset          = "reset"
	ActionAdjust         = "adjust"
	ActionAddTime        = "add_time"
	ActionJump           = "jump"
	ActionLap            = "lap"
	ActionRoll           = "roll"
	ActionMakeGroups     = "make_groups"
	ActionVote           = "vote"
	ActionResetPoll      = "reset_poll"
	ActionEditPoll       = "edit_poll"
	ActionScore          = "score"
	ActionResetScores    = "reset_scores"
	ActionAddTeam        = "add_team"
	ActionRemoveTeam     = "remove_team"
	ActionLight          = "light"
	ActionAddStudent     = "add_student"
	ActionRemoveStudent  = "remove_student"
	ActionImportStudents = "import_students"
	ActionAddPhase       = "add_phase"
	ActionEditPhase      = "edit_phase"
	ActionRemovePhase    = "remove_phase"
	ActionFontSize       = "font_size"
	ActionAlign          = "align"
	ActionEditTeam       = "edit_team"
	ActionSetCount       = "set_count"
)
