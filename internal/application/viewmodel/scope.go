package viewmodel

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed el view-model ya fue cerrado.
var ErrClosed = errors.New("view-model cerrado")

// Scope ciclo de vida de un view-model: al cerrarlo se cancela todo el trabajo en curso.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScope crea un scope hijo de parent.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Bind deriva de ctx un contexto que además se cancela al cerrar el scope.
func (s *Scope) Bind(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if s.ctx.Err() != nil {
		return nil, nil, ErrClosed
	}
	bound, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	return bound, func() {
		stop()
		cancel()
	}, nil
}

// Go lanza fn en segundo plano atada al scope.
func (s *Scope) Go(fn func(ctx context.Context)) {
	if s.ctx.Err() != nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Close cancela el trabajo en curso y espera a las tareas lanzadas con Go.
func (s *Scope) Close() {
	s.cancel()
	s.wg.Wait()
}

// Closed indica si el scope fue cerrado.
func (s *Scope) Closed() bool { return s.ctx.Err() != nil }

// op ejecuta fn dentro del scope y publica el resultado en c.
func op[T any](s *Scope, ctx context.Context, c *Container[T], fn func(ctx context.Context) (T, error)) State[T] {
	bound, done, err := s.Bind(ctx)
	if err != nil {
		return Failure[T](err)
	}
	defer done()
	return run(c, func() (T, error) { return fn(bound) })
}
