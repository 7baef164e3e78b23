package dbx

// Observer wraps a logical database operation for instrumentation.
type Observer interface {
	ObserveDB(op string, fn func() error) error
}

// NopObserver runs fn without recording anything.
type NopObserver struct{}

func (NopObserver) ObserveDB(_ string, fn func() error) error {
	return fn()
}
