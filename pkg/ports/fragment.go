package ports

// Fragment is the external navigation address. An empty or unknown value means
// "nothing selected".
//
// Set must notify subscribers only when the value actually changes, the way a
// browser fires hashchange. Listeners run synchronously; last write wins.
type Fragment interface {
	Get() string
	Set(fragment string)

	// Subscribe registers a change listener and returns a function removing it.
	Subscribe(fn func(fragment string)) (unsubscribe func())
}
