// Package resilience provides reliability patterns for calls that leave the
// process. It includes a circuit breaker for the summarization provider and
// retry logic with exponential backoff and jitter.
//
// Both are opt-in: the summarization pipeline performs exactly one provider
// call per attempt unless resilience is enabled in configuration.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callProvider()
//	})
//
//	err := retry.WithBackoff(ctx, retry.AIAPIConfig(), func() error {
//	    return performOperation()
//	})
package resilience
