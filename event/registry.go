package event

import "fmt"

var typeToName = map[EventType]string{
	EventBallSpawned:   "BallSpawned",
	EventCombine:       "Combine",
	EventEliminate:     "Eliminate",
	EventDegrade:       "Degrade",
	EventDestroy:       "Destroy",
	EventBounce:        "Bounce",
	EventLifeLost:      "LifeLost",
	EventLifeGained:    "LifeGained",
	EventScore:         "Score",
	EventHighestLevel:  "HighestLevel",
	EventWindStart:     "WindStart",
	EventWindSnap:      "WindSnap",
	EventWindEnd:       "WindEnd",
	EventWindExpired:   "WindExpired",
	EventGameOver:      "GameOver",
	EventGameReset:     "GameReset",
	EventConfigApplied: "ConfigApplied",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// String returns the registered name
func (t EventType) String() string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}
