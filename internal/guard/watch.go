package guard

import "go-certtrack/internal/client"

// Source is a session that reports its changes.
type Source interface {
	Snapshot() client.State
	Subscribe(fn func(client.State)) func()
}

// Watch reports the decision for path now and again whenever the session
// changes. The returned func stops watching.
func Watch(src Source, path string, fn func(Decision)) func() {
	unsubscribe := src.Subscribe(func(s client.State) {
		fn(Resolve(s, path))
	})
	fn(Resolve(src.Snapshot(), path))
	return unsubscribe
}
