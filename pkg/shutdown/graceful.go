// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"keepnote/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogSignalReceived  = "shutdown signal received"
	LogContextDone     = "shutdown triggered by context"
	LogHookFailed      = "shutdown hook failed"
	LogShutdownTimeout = "shutdown timeout exceeded"
)

// Hook - функция освобождения ресурса при остановке.
type Hook func(context.Context) error

// Wait блокирует выполнение до получения SIGINT/SIGTERM или отмены ctx,
// затем параллельно выполняет хуки в рамках заданного timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log := logger.Log(ctx)

	select {
	case sig := <-sigCh:
		log.Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, LogContextDone)
	}

	Run(context.WithoutCancel(ctx), timeout, hooks...)
}

// Run выполняет хуки параллельно и возвращается, когда все завершились или истек timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := logger.Log(ctx)

	var wg sync.WaitGroup
	for i, hook := range hooks {
		wg.Add(1)
		go func(idx int, fn Hook) {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				log.Warn(ctx, LogHookFailed, zap.Int("hook", idx), zap.Error(err))
			}
		}(i, hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn(ctx, LogShutdownTimeout, zap.Duration("timeout", timeout))
	}
}
