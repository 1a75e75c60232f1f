package cache

// Observer receives the events produced by Service. It keeps logging and
// metrics out of the façade's control flow.
type Observer interface {
	// Put is called before a value is written.
	Put(name, key, value string)
	// Get is called before a key is read.
	Get(name, key string)
	// Clear is called before the cache is emptied.
	Clear(name string)
	// HandleUnavailable is called when no handle could be acquired. err is nil
	// when the manager reported that the cache does not exist.
	HandleUnavailable(name, op string, err error)
	// OperationFailed is called when a degrading operation swallowed an error.
	OperationFailed(name, op string, err error)
	// ProbeSucceeded is called when the health probe answered.
	ProbeSucceeded(name string, size int)
	// ProbeFailed is called when the health probe returned an error.
	ProbeFailed(name string, err error)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) Put(string, string, string) {}
func (NopObserver) Get(string, string) {}
func (NopObserver) Clear(string) {}
func (NopObserver) HandleUnavailable(string, string, error) {}
func (NopObserver) OperationFailed(string, string, error) {}
func (NopObserver) ProbeSucceeded(string, int) {}
func (NopObserver) ProbeFailed(string, error) {}
