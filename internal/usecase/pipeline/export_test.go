//go:build unit

package pipeline

const MaxRetainedOrigins = maxRetainedOrigins

func (p *Pipeline) SubscriberCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hub.size()
}
