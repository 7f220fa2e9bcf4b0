package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldSport     = "sport"
	FieldOperation = "operation"
	FieldGameID    = "game_id"
	FieldTeamID    = "team_id"
	FieldStatus    = "status"
	FieldDate      = "date"
	FieldDuration  = "duration"
	FieldCallID    = "call_id"
)
