package event

// EventType represents the type of game event
type EventType int

const (
	// EventBallSpawned signals a token entered from the top edge
	// Trigger: SpawnSystem | Payload: *BallPayload
	EventBallSpawned EventType = iota

	// EventCombine signals two tokens merged into a higher level
	// Trigger: CollisionSystem rule combine | Payload: *CombinePayload
	EventCombine

	// EventEliminate signals two identical tokens annihilated
	// Trigger: CollisionSystem rule eliminate | Payload: *EliminatePayload
	EventEliminate

	// EventDegrade signals a token was replaced by one of its ingredients
	// Trigger: void contact, hard degradation, boundary | Payload: *DegradePayload
	EventDegrade

	// EventDestroy signals a token was destroyed outright
	// Trigger: void contact, immunity, boundary, explosion | Payload: *BallPayload
	EventDestroy

	// EventBounce signals an elastic fallback collision
	// Trigger: CollisionSystem | Payload: *PairPayload
	EventBounce

	// EventLifeLost signals a life was lost
	// Trigger: boundary exit, void destruction | Payload: *LivesPayload
	EventLifeLost

	// EventLifeGained signals two life tokens matched
	// Trigger: CollisionSystem rule life pair | Payload: *LivesPayload
	EventLifeGained

	// EventScore signals a score award
	// Trigger: combination above level 2, elimination scoring | Payload: *ScorePayload
	EventScore

	// EventHighestLevel signals a new high-water level
	// Trigger: combination | Payload: *LevelPayload
	EventHighestLevel

	// EventWindStart signals a new wind curve
	// Trigger: BeginWind | Payload: nil
	EventWindStart

	// EventWindSnap signals a curve was split at a sharp turn
	// Trigger: ExtendWind with angle snapping | Payload: *PointPayload
	EventWindSnap

	// EventWindEnd signals a curve was finalized
	// Trigger: EndWind | Payload: *WindEndPayload
	EventWindEnd

	// EventWindExpired signals a curve was cleared
	// Trigger: WindSystem | Payload: nil
	EventWindExpired

	// EventGameOver signals lives are exhausted
	// Trigger: LoseLife | Payload: *ScorePayload
	EventGameOver

	// EventGameReset signals a restart
	// Trigger: World.Reset | Payload: nil
	EventGameReset

	// EventConfigApplied signals a new config took effect
	// Trigger: World.ApplyConfig | Payload: *ConfigAppliedPayload
	EventConfigApplied
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
