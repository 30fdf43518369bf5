package resilience

import (
	"context"
)

// ServiceResilience объединяет circuit breaker и retry для одной зависимости.
type ServiceResilience struct {
	serviceName    string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewServiceResilience создает обертку с настройками по умолчанию.
func NewServiceResilience(serviceName string) *ServiceResilience {
	return NewServiceResilienceWithConfig(serviceName, DefaultCircuitBreakerConfig(), DefaultRetryConfig())
}

// NewServiceResilienceWithConfig создает обертку с явными настройками.
func NewServiceResilienceWithConfig(serviceName string, cb CircuitBreakerConfig, retry RetryConfig) *ServiceResilience {
	return &ServiceResilience{
		serviceName:    serviceName,
		circuitBreaker: NewCircuitBreaker(serviceName, cb),
		retry:          NewRetry(serviceName, retry),
	}
}

// Execute выполняет операцию под breaker; повторы выполняются внутри одного разрешенного запроса.
func (r *ServiceResilience) Execute(ctx context.Context, operation func() error) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.retry.Execute(ctx, operation)
	})
}

// Breaker возвращает circuit breaker зависимости.
func (r *ServiceResilience) Breaker() *CircuitBreaker {
	return r.circuitBreaker
}

// Do выполняет fn через ServiceResilience и возвращает ее результат.
func Do[T any](ctx context.Context, r *ServiceResilience, fn func() (T, error)) (T, error) {
	var result T
	err := r.Execute(ctx, func() error {
		var opErr error
		result, opErr = fn()
		return opErr
	})
	return result, err
}
