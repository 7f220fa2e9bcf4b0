package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrOperation = "operation"
	AttrStatus    = "status"
)
