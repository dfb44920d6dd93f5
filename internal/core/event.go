package core

// Event is a discrete gameplay occurrence that adapters (audio, logging,
// persistence) react to. Events are fire-and-forget.
type Event uint8

const (
	EventFlap     Event = iota + 1 // Jump impulse applied
	EventScore                     // A pipe left the screen while alive
	EventPowerUp                   // A power-up was collected
	EventHit                       // A life was lost
	EventGameOver                  // The last life was lost
	EventRestart                   // The session returned to the start screen
)

// String returns the event name used in logs.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventPowerUp:
		return "powerup"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "gameover"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}
