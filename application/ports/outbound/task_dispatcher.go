package outbound

// TaskDispatcher abstracts the shared worker pool so services never depend
// on a concrete pool implementation.
type TaskDispatcher interface {
	Submit(task func()) error
}
