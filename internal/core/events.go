package core

// Event is a semantic gameplay event emitted by a simulation tick.
// The platform layer consumes events for sound playback; dropping them
// is always safe.
type Event int

const (
	EventNone Event = iota
	EventPaddleHit
	EventBrickDestroyed
	EventPowerUpDropped
	EventPowerUpActivated
	EventLifeLost
	EventLevelUp
	EventGameOver
	EventMusicPlay
	EventMusicPause
	EventMusicResume
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPaddleHit:
		return "PaddleHit"
	case EventBrickDestroyed:
		return "BrickDestroyed"
	case EventPowerUpDropped:
		return "PowerUpDropped"
	case EventPowerUpActivated:
		return "PowerUpActivated"
	case EventLifeLost:
		return "LifeLost"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	case EventMusicPlay:
		return "MusicPlay"
	case EventMusicPause:
		return "MusicPause"
	case EventMusicResume:
		return "MusicResume"
	default:
		return "Unknown"
	}
}
