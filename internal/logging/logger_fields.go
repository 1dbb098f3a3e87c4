package logging

import "time"

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Component names the subsystem emitting the entry
func Component(name string) Field { return String("component", name) }

func Scenario(name string) Field { return String("scenario", name) }

func Mode(mode string) Field { return String("mode", mode) }

func RunID(id string) Field { return String("run_id", id) }

func Latency(d time.Duration) Field { return Duration("latency", d) }
